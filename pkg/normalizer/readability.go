package normalizer

import (
	"bytes"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"

	"github.com/jmylchreest/profextract/internal/logger"
)

// ReadabilityConfig configures the Readability normalizer.
type ReadabilityConfig struct {
	// MaxElemsToParse limits the number of nodes to parse (0 = no limit).
	MaxElemsToParse int
	// NTopCandidates is the number of top candidates to consider (default: 5).
	NTopCandidates int
	// CharThreshold is the minimum character count for valid content (default: 500).
	CharThreshold int
}

// ReadabilityNormalizer keeps only the main article of a page using
// go-readability and renders it as text. Pages without a recognizable
// article pass through unchanged, so it must be followed by another
// normalizer (see New).
type ReadabilityNormalizer struct {
	parser readability.Parser
}

// NewReadability creates a new Readability normalizer.
// Pass nil for default configuration.
func NewReadability(cfg *ReadabilityConfig) *ReadabilityNormalizer {
	if cfg == nil {
		cfg = &ReadabilityConfig{}
	}

	parser := readability.NewParser()
	if cfg.MaxElemsToParse > 0 {
		parser.MaxElemsToParse = cfg.MaxElemsToParse
	}
	if cfg.NTopCandidates > 0 {
		parser.NTopCandidates = cfg.NTopCandidates
	}
	if cfg.CharThreshold > 0 {
		parser.CharThresholds = cfg.CharThreshold
	}

	return &ReadabilityNormalizer{parser: parser}
}

// Normalize returns the article text, or content unchanged when no
// article could be extracted.
func (n *ReadabilityNormalizer) Normalize(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	article, err := n.parser.Parse(strings.NewReader(content), nil)
	if err != nil {
		logger.Debug("readability parse failed, passing content through", "error", err)
		return content
	}
	if article.Node == nil {
		return content
	}

	var buf bytes.Buffer
	if err := article.RenderText(&buf); err != nil || buf.Len() == 0 {
		return content
	}
	return CollapseWhitespace(buf.String())
}

// Name returns the normalizer type.
func (n *ReadabilityNormalizer) Name() string {
	return string(ModeReadability)
}
