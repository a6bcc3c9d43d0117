package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/profextract/pkg/profile"
)

// newEncoder returns an encoder that leaves <, > and & unescaped.
func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// JSONWriter buffers results and writes them as one JSON array.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	items   []profile.RawProfile
	flushed bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
		items:  make([]profile.RawProfile, 0),
	}
}

// Write buffers a single item for JSON array output.
func (w *JSONWriter) Write(r profile.RawProfile) error {
	w.items = append(w.items, r)
	return nil
}

// WriteAll buffers multiple items.
func (w *JSONWriter) WriteAll(rs []profile.RawProfile) error {
	w.items = append(w.items, rs...)
	return nil
}

// Flush writes the buffered items as a newline-terminated JSON array.
// An empty writer produces "[]".
func (w *JSONWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	enc := newEncoder(w.w)
	if w.pretty {
		enc.SetIndent("", w.indent)
	}
	if err := enc.Encode(w.items); err != nil {
		return writeFailed(err)
	}
	if err := w.w.Flush(); err != nil {
		return writeFailed(err)
	}
	return nil
}

// Close flushes and closes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL), one compact object per
// result as soon as it is written.
type JSONLWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	bw := bufio.NewWriter(w)
	return &JSONLWriter{
		w:   bw,
		enc: newEncoder(bw),
	}
}

// Write writes a single item as a JSON line.
func (w *JSONLWriter) Write(r profile.RawProfile) error {
	if err := w.enc.Encode(r); err != nil {
		return writeFailed(err)
	}
	return w.Flush()
}

// WriteAll writes multiple items as JSON lines.
func (w *JSONLWriter) WriteAll(rs []profile.RawProfile) error {
	for _, r := range rs {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	if err := w.w.Flush(); err != nil {
		return writeFailed(err)
	}
	return nil
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
