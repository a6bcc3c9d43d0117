// Package extractor turns a declared profile file into text.
//
// Extraction never fails: an unreadable file or an unknown file type yields
// an empty result and is logged, so a single bad entry cannot stop a run.
package extractor

import (
	"context"
)

// Kind classifies an extraction result.
type Kind int

const (
	// KindEmpty means no text could be produced.
	KindEmpty Kind = iota
	// KindText is normalized text from a document.
	KindText
	// KindPlaceholder is a fixed message from an extractor that is not implemented.
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "empty"
	}
}

// Result is the outcome of extracting one file.
type Result struct {
	Kind Kind
	Text string
}

// Text returns a KindText result, or an empty result when s is empty.
func Text(s string) Result {
	if s == "" {
		return Empty()
	}
	return Result{Kind: KindText, Text: s}
}

// Placeholder returns a KindPlaceholder result.
func Placeholder(s string) Result {
	return Result{Kind: KindPlaceholder, Text: s}
}

// Empty returns a KindEmpty result.
func Empty() Result {
	return Result{Kind: KindEmpty}
}

// Extractor produces text for the file at path.
type Extractor interface {
	// Extract returns the text of the file at path. It never fails.
	Extract(ctx context.Context, path string) Result

	// Name returns the extractor type for logging/debugging.
	Name() string
}
