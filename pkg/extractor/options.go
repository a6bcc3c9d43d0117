package extractor

import (
	"github.com/jmylchreest/profextract/pkg/normalizer"
)

// Config holds HTML extraction settings.
type Config struct {
	// Normalizer converts file content to text (default: regex).
	Normalizer normalizer.Normalizer
	// MaxFileSize caps the bytes read per file (0 = unlimited).
	MaxFileSize int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Normalizer: normalizer.NewRegex(),
	}
}

// Option configures an HTML extractor.
type Option func(*Config)

// WithNormalizer sets the normalizer applied to file content.
func WithNormalizer(n normalizer.Normalizer) Option {
	return func(c *Config) {
		c.Normalizer = n
	}
}

// WithMaxFileSize caps the size of files read. Larger files are treated as
// unreadable.
func WithMaxFileSize(n int64) Option {
	return func(c *Config) {
		c.MaxFileSize = n
	}
}
