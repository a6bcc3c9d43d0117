package extractor

import (
	"context"
	"fmt"

	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/pkg/profile"
)

// defaultTable maps every known file type to its extractor.
func defaultTable(html Extractor) map[profile.FileType]Extractor {
	pdf, docx := NewPDF(), NewDOCX()
	return map[profile.FileType]Extractor{
		profile.TypeResumePDF:  pdf,
		profile.TypeResumeDOCX: docx,
		profile.TypeReadme:     html,
		profile.TypePublicDir:  html,
		profile.TypeDocsDir:    html,
		profile.TypeAboutDir:   html,
		profile.TypeCVDir:      html,
	}
}

// Dispatcher selects an extractor by declared file type.
// Register is not safe for use concurrently with Extract.
type Dispatcher struct {
	table map[profile.FileType]Extractor
}

// NewDispatcher creates a dispatcher whose HTML-family types use an HTML
// extractor built from opts.
func NewDispatcher(opts ...Option) *Dispatcher {
	return &Dispatcher{table: defaultTable(NewHTML(opts...))}
}

// Register replaces the extractor for file type t.
func (d *Dispatcher) Register(t profile.FileType, e Extractor) {
	d.table[t] = e
}

// Lookup returns the extractor for file type t.
func (d *Dispatcher) Lookup(t profile.FileType) (Extractor, bool) {
	e, ok := d.table[t]
	return e, ok
}

// Extract runs the extractor registered for f.FileType on f.FilePath.
// Unknown file types produce an empty result.
func (d *Dispatcher) Extract(ctx context.Context, f profile.ProfileFile) Result {
	e, ok := d.table[f.FileType]
	if !ok {
		logger.DebugContext(ctx, "skipping file",
			"url", f.URL,
			"error", fmt.Errorf("%w: %q", profile.ErrUnknownFileType, f.FileType))
		return Empty()
	}

	return e.Extract(ctx, f.FilePath)
}
