package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/profextract/pkg/extractor"
	"github.com/jmylchreest/profextract/pkg/normalizer"
	"github.com/jmylchreest/profextract/pkg/profile"
)

func newNormalizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <file>...",
		Short: "Print the normalized text of HTML files",
		Long: `Normalize runs the configured HTML normalizer over each file and prints
one line of text per file, in argument order.

Examples:
  # Normalize a page with the default and the tokenizer modes
  profextract normalize index.html
  profextract normalize --normalizer tokenizer index.html

  # Show input and output sizes
  profextract normalize --stats docs/*.html

  # Run every normalizer and compare output sizes
  profextract normalize --compare index.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runNormalize,
	}

	cmd.Flags().Bool("stats", false, "print input and output sizes to stderr")
	cmd.Flags().Bool("compare", false, "run every normalizer and print a comparison table")

	return cmd
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) error {
	showStats, _ := cmd.Flags().GetBool("stats")
	if compare, _ := cmd.Flags().GetBool("compare"); compare {
		return compareNormalizers(cmd, args)
	}

	opts, err := a.extractorOptions()
	if err != nil {
		return err
	}
	e := extractor.NewHTML(opts...)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %w", profile.ErrFileUnreadable, err)
		}

		res := e.Extract(ctx, path)
		if _, err := fmt.Fprintln(out, res.Text); err != nil {
			return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
		}

		if showStats {
			in, outSize := uint64(info.Size()), uint64(len(res.Text))
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s -> %s (%s, %s)\n",
				path, humanize.Bytes(in), humanize.Bytes(outSize), reduction(in, outSize), e.Name())
		}
	}
	return nil
}

// reduction formats how much smaller out is than in.
func reduction(in, out uint64) string {
	if in == 0 {
		return "0.0% smaller"
	}
	return fmt.Sprintf("%.1f%% smaller", 100*(1-float64(out)/float64(in)))
}

// compareNormalizers prints output size, reduction and timing of every
// normalizer mode for each file.
func compareNormalizers(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	row := "%-28s %10s %14s %10s\n"

	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", profile.ErrFileUnreadable, err)
		}
		content := string(data)
		in := uint64(len(data))

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s: %s\n", path, humanize.Bytes(in))
		fmt.Fprintf(out, row, "Normalizer", "Output", "Reduction", "Time")
		fmt.Fprintf(out, row, "----------", "------", "---------", "----")

		for _, mode := range normalizer.Modes() {
			n, err := normalizer.New(mode)
			if err != nil {
				return err
			}

			start := time.Now()
			text := n.Normalize(content)
			elapsed := time.Since(start)

			size := uint64(len(text))
			if _, err := fmt.Fprintf(out, row, n.Name(), humanize.Bytes(size), reduction(in, size), elapsed.Round(time.Microsecond)); err != nil {
				return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
			}
		}
	}
	return nil
}
