package normalizer

import (
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// RegexNormalizer strips tags with a regular expression and collapses
// whitespace. Every '<' up to the next '>' becomes a single space, left to
// right with no nesting awareness; an unmatched '<' is kept.
type RegexNormalizer struct{}

// NewRegex creates a new regex normalizer.
func NewRegex() *RegexNormalizer {
	return &RegexNormalizer{}
}

// Normalize strips tags, collapses whitespace and trims the result.
func (n *RegexNormalizer) Normalize(content string) string {
	if content == "" {
		return ""
	}
	return CollapseWhitespace(tagRegex.ReplaceAllLiteralString(content, " "))
}

// Name returns the normalizer type.
func (n *RegexNormalizer) Name() string {
	return string(ModeRegex)
}

// CollapseWhitespace replaces each run of Unicode white space (as defined
// by unicode.IsSpace, so including NBSP, VT and U+2003) with one ASCII
// space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
