// Package normalizer converts HTML-like content into a single line of
// whitespace-collapsed text.
//
// The default mode strips anything between '<' and the next '>' with a
// regular expression. It is not an HTML parser and is lossy by design:
// entities stay encoded and script or style bodies survive as text. The
// tokenizer and readability modes parse the document instead and are
// composed with the regex mode so every mode yields tag-free output.
package normalizer

import (
	"fmt"
	"strings"
)

// Normalizer transforms HTML content into normalized plain text.
// Implementations never fail; unparseable input degrades to best effort.
type Normalizer interface {
	// Normalize returns the normalized text for content.
	Normalize(content string) string

	// Name returns the normalizer type for logging/debugging.
	Name() string
}

// Mode selects a normalizer implementation.
type Mode string

const (
	ModeRegex       Mode = "regex"
	ModeTokenizer   Mode = "tokenizer"
	ModeReadability Mode = "readability"
)

// Modes returns every supported mode, default first.
func Modes() []Mode {
	return []Mode{ModeRegex, ModeTokenizer, ModeReadability}
}

// New returns the normalizer for mode. An empty mode selects ModeRegex.
func New(mode Mode) (Normalizer, error) {
	switch mode {
	case ModeRegex, "":
		return NewRegex(), nil
	case ModeTokenizer:
		return NewChain(NewTokenizer(), NewRegex()), nil
	case ModeReadability:
		return NewChain(NewReadability(nil), NewRegex()), nil
	default:
		names := make([]string, 0, len(Modes()))
		for _, m := range Modes() {
			names = append(names, string(m))
		}
		return nil, fmt.Errorf("unsupported normalizer mode: %s (use %s)", mode, strings.Join(names, ", "))
	}
}
