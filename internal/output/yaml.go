package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/profextract/pkg/profile"
)

// YAMLWriter buffers results and writes them as one YAML sequence.
type YAMLWriter struct {
	w       *bufio.Writer
	items   []profile.RawProfile
	flushed bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:     bufio.NewWriter(w),
		items: make([]profile.RawProfile, 0),
	}
}

// Write buffers a single item.
func (w *YAMLWriter) Write(r profile.RawProfile) error {
	w.items = append(w.items, r)
	return nil
}

// WriteAll buffers multiple items.
func (w *YAMLWriter) WriteAll(rs []profile.RawProfile) error {
	w.items = append(w.items, rs...)
	return nil
}

// Flush writes the buffered items as a YAML sequence.
func (w *YAMLWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(w.items); err != nil {
		return writeFailed(err)
	}
	if err := encoder.Close(); err != nil {
		return writeFailed(err)
	}
	if err := w.w.Flush(); err != nil {
		return writeFailed(err)
	}
	return nil
}

// Close flushes and closes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
