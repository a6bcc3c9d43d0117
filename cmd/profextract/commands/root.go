// Package commands implements the CLI commands for profextract.
package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/internal/output"
	"github.com/jmylchreest/profextract/pkg/extractor"
	"github.com/jmylchreest/profextract/pkg/manifest"
	"github.com/jmylchreest/profextract/pkg/normalizer"
	"github.com/jmylchreest/profextract/pkg/pipeline"
	"github.com/jmylchreest/profextract/pkg/profile"
)

// app carries state shared by the command tree of one invocation.
type app struct {
	v   *viper.Viper
	cfg *Config
}

// NewRootCmd builds the profextract command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "profextract",
		Short: "Extract raw text from profile documents listed in a manifest",
		Long: `Profextract reads a manifest of profile documents on stdin and writes
one raw text extract per entry to stdout.

The manifest looks like:
  {"profiles": [{"url": "...", "file_path": "...", "type": "readme"}]}

HTML-family types (readme, public_dir, docs_dir, about_dir, cv_dir) are read
from file_path and normalized to a single line of text. resume_pdf and
resume_docx produce a placeholder. Any other type produces empty text.

Examples:
  # Extract with the defaults
  profextract < manifest.json > raw-profiles.json

  # Drop script/style bodies and decode entities
  profextract --normalizer tokenizer < manifest.json

  # Stream one JSON object per line, skipping files over 5MB
  profextract --format jsonl --max-file-size 5MB < manifest.json`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runExtract,
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default ./.profextract.yaml or $HOME/.profextract.yaml)")
	pf.Bool("debug", false, "enable debug logging")
	pf.BoolP("quiet", "q", false, "only log errors")
	pf.Bool("log-json", false, "log as JSON")
	pf.StringP("normalizer", "n", string(normalizer.ModeRegex), "HTML normalizer: regex, tokenizer, readability")
	pf.String("max-file-size", "0", "skip files larger than this (e.g., 500KB, 10MB, 0=unlimited)")

	flags := cmd.Flags()
	flags.StringP("format", "f", string(output.FormatJSON), "output format: json, jsonl, yaml")

	// Bind to viper
	_ = a.v.BindPFlag("debug", pf.Lookup("debug"))
	_ = a.v.BindPFlag("quiet", pf.Lookup("quiet"))
	_ = a.v.BindPFlag("log_json", pf.Lookup("log-json"))
	_ = a.v.BindPFlag("normalizer", pf.Lookup("normalizer"))
	_ = a.v.BindPFlag("max_file_size", pf.Lookup("max-file-size"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))

	cmd.AddCommand(
		newNormalizeCmd(a),
		newExportCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads configuration and initializes logging for every command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := initConfig(a.v, cfgFile); err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(logger.Options{
		Debug:  cfg.Debug,
		Quiet:  cfg.Quiet,
		JSON:   cfg.LogJSON,
		Output: cmd.ErrOrStderr(),
	})

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Info("using config file", "path", used)
	}
	logger.Debug("configuration",
		"format", cfg.Format,
		"normalizer", cfg.Normalizer,
		"max_file_size", cfg.maxFileBytes)
	return nil
}

// newNormalizer returns the normalizer selected by the configuration.
func (a *app) newNormalizer() (normalizer.Normalizer, error) {
	n, err := normalizer.New(normalizer.Mode(a.cfg.Normalizer))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", profile.ErrInvalidConfig, err)
	}
	return n, nil
}

// extractorOptions returns the HTML extraction options for this run.
func (a *app) extractorOptions() ([]extractor.Option, error) {
	n, err := a.newNormalizer()
	if err != nil {
		return nil, err
	}
	return []extractor.Option{
		extractor.WithNormalizer(n),
		extractor.WithMaxFileSize(a.cfg.maxFileBytes),
	}, nil
}

func (a *app) runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	m, err := manifest.NewReader().Read(cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts, err := a.extractorOptions()
	if err != nil {
		return err
	}

	w, err := output.NewWriter(cmd.OutOrStdout(), output.Format(a.cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", profile.ErrInvalidConfig, err)
	}

	p := pipeline.New(extractor.NewDispatcher(opts...))
	if err := p.Stream(ctx, m, w.Write); err != nil {
		return err
	}
	return w.Close()
}
