package commands

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/profextract/pkg/profile"
)

// envPrefix prefixes every environment override, e.g. PROFEXTRACT_FORMAT.
const envPrefix = "PROFEXTRACT"

// Config is the resolved configuration from flags, environment and the
// optional config file, in that order of precedence.
type Config struct {
	Debug       bool   `mapstructure:"debug"`
	Quiet       bool   `mapstructure:"quiet"`
	LogJSON     bool   `mapstructure:"log_json"`
	Format      string `mapstructure:"format" validate:"oneof=json jsonl yaml"`
	Normalizer  string `mapstructure:"normalizer" validate:"oneof=regex tokenizer readability"`
	MaxFileSize string `mapstructure:"max_file_size"`

	// maxFileBytes is MaxFileSize parsed; 0 means unlimited.
	maxFileBytes int64
}

// initConfig points v at the config file and environment.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".profextract")
		v.SetConfigType("yaml")
	}

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Read config file (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: reading config: %w", profile.ErrInvalidConfig, err)
	}
	return nil
}

// loadConfig decodes and validates the configuration held by v.
func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", profile.ErrInvalidConfig, err)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		return name
	})
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", profile.ErrInvalidConfig, describeValidation(err))
	}

	size, err := parseSize(cfg.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("%w: max_file_size: %w", profile.ErrInvalidConfig, err)
	}
	cfg.maxFileBytes = size

	return &cfg, nil
}

// parseSize parses a human-readable size such as "10MB". Empty and "0"
// mean unlimited.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("%s is too large", s)
	}
	return int64(n), nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
