package normalizer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jmylchreest/profextract/internal/logger"
)

// droppedSelector lists elements whose bodies are never visible text.
const droppedSelector = "script, style, noscript, template"

// blockElements start and end on a word boundary.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "title": true, "tr": true, "ul": true,
}

// TokenizerNormalizer parses content as HTML, drops script and style
// bodies, decodes entities and keeps block boundaries as spaces.
//
// Decoded entities can reintroduce '<' and '>' (e.g. "&lt;b&gt;"), so
// New(ModeTokenizer) chains it with the regex normalizer.
type TokenizerNormalizer struct{}

// NewTokenizer creates a new tokenizer normalizer.
func NewTokenizer() *TokenizerNormalizer {
	return &TokenizerNormalizer{}
}

// Normalize extracts the visible text of content.
func (n *TokenizerNormalizer) Normalize(content string) string {
	if content == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Graceful degradation: hand the original to the next step
		logger.Debug("html parse failed, passing content through", "error", err)
		return content
	}

	doc.Find(droppedSelector).Remove()

	var b strings.Builder
	for _, node := range doc.Nodes {
		writeText(&b, node)
	}
	return CollapseWhitespace(b.String())
}

// Name returns the normalizer type.
func (n *TokenizerNormalizer) Name() string {
	return string(ModeTokenizer)
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[strings.ToLower(n.Data)]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte(' ')
	}
}
