package normalizer

import (
	"strings"
)

// ChainNormalizer applies multiple normalizers in sequence.
type ChainNormalizer struct {
	steps []Normalizer
}

// NewChain creates a normalizer that applies steps in the order provided.
//
// Example:
//
//	chain := normalizer.NewChain(
//	    normalizer.NewTokenizer(),
//	    normalizer.NewRegex(),
//	)
func NewChain(steps ...Normalizer) *ChainNormalizer {
	return &ChainNormalizer{steps: steps}
}

// Normalize feeds the output of each step into the next.
func (c *ChainNormalizer) Normalize(content string) string {
	for _, step := range c.steps {
		content = step.Normalize(content)
	}
	return content
}

// Name returns the names of all chained normalizers.
func (c *ChainNormalizer) Name() string {
	names := make([]string, len(c.steps))
	for i, step := range c.steps {
		names[i] = step.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
