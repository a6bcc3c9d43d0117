package extractor

import (
	"context"
)

// PDFExtractor is a placeholder until PDF decoding exists. It never reads
// the file.
type PDFExtractor struct{}

// NewPDF creates the PDF placeholder extractor.
func NewPDF() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract returns the PDF placeholder text for path.
func (e *PDFExtractor) Extract(_ context.Context, path string) Result {
	return Placeholder("PDF extraction not implemented for " + path)
}

// Name returns the extractor type.
func (e *PDFExtractor) Name() string {
	return "pdf-stub"
}

// DOCXExtractor is a placeholder until DOCX decoding exists. It never reads
// the file.
type DOCXExtractor struct{}

// NewDOCX creates the DOCX placeholder extractor.
func NewDOCX() *DOCXExtractor {
	return &DOCXExtractor{}
}

// Extract returns the DOCX placeholder text for path.
func (e *DOCXExtractor) Extract(_ context.Context, path string) Result {
	return Placeholder("DOCX extraction not implemented for " + path)
}

// Name returns the extractor type.
func (e *DOCXExtractor) Name() string {
	return "docx-stub"
}
