// Package output serializes extraction results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/profextract/pkg/profile"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formats returns every supported format, default first.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONL, FormatYAML}
}

// Writer serializes RawProfiles. Any write or encode failure is reported as
// profile.ErrOutputWriteFailed.
type Writer interface {
	// Write outputs a single result.
	Write(r profile.RawProfile) error

	// WriteAll outputs multiple results.
	WriteAll(rs []profile.RawProfile) error

	// Flush ensures all data is written. Buffered formats emit their
	// document on the first Flush only.
	Flush() error

	// Close flushes the writer.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	indent string
}

// WithPretty enables pretty-printing.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithIndent sets the indentation string.
func WithIndent(indent string) WriterOption {
	return func(c *writerConfig) {
		c.indent = indent
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty: true,
		indent: "  ",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty, cfg.indent), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		names := make([]string, 0, len(Formats()))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return nil, fmt.Errorf("unsupported output format: %s (use %s)", format, strings.Join(names, ", "))
	}
}

// Serialize writes results to w in the given format.
func Serialize(w io.Writer, format Format, results []profile.RawProfile) error {
	ow, err := NewWriter(w, format)
	if err != nil {
		return err
	}
	if err := ow.WriteAll(results); err != nil {
		return err
	}
	return ow.Close()
}

func writeFailed(err error) error {
	return fmt.Errorf("%w: %w", profile.ErrOutputWriteFailed, err)
}
