package normalizer

import (
	"strings"
	"testing"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Jane Doe</title></head>
<body>
<nav><a href="/">Home</a> <a href="/about">About</a></nav>
<article>
<h1>About Jane</h1>
<p>Jane Doe is a distributed systems engineer who has spent the last decade building storage engines, replication protocols and the tooling around them.</p>
<p>Before that she worked on compilers and static analysis, and she still maintains several open source linters that are used by large engineering organisations.</p>
<p>She writes about consensus algorithms, operational excellence and the craft of reviewing code, and she speaks at conferences about reliability engineering.</p>
</article>
<footer>Copyright Jane Doe</footer>
</body>
</html>`

func TestReadabilityNormalizer_Name(t *testing.T) {
	if got := NewReadability(nil).Name(); got != "readability" {
		t.Errorf("Name() = %q, want %q", got, "readability")
	}
}

func TestReadabilityNormalizer_Empty(t *testing.T) {
	n := NewReadability(nil)
	for _, in := range []string{"", "   \n"} {
		if got := n.Normalize(in); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", in, got)
		}
	}
}

func TestReadabilityMode_Article(t *testing.T) {
	n, err := New(ModeReadability)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := n.Normalize(articlePage)

	if !strings.Contains(got, "distributed systems engineer") {
		t.Errorf("Normalize() = %q, missing article text", got)
	}
	if tagRegex.MatchString(got) {
		t.Errorf("Normalize() = %q, still contains a tag", got)
	}
	if strings.Contains(got, "  ") || strings.ContainsAny(got, "\t\n\r\f") {
		t.Errorf("Normalize() = %q, whitespace not collapsed", got)
	}
}

func TestReadabilityMode_FallsBackWithoutArticle(t *testing.T) {
	n, err := New(ModeReadability)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Too short for an article; the regex step still produces text.
	got := n.Normalize("<p>Hello   <b>world</b></p>")
	if got != "Hello world" {
		t.Errorf("Normalize() = %q, want %q", got, "Hello world")
	}
}

func TestNewReadability_Config(t *testing.T) {
	n := NewReadability(&ReadabilityConfig{
		MaxElemsToParse: 100,
		NTopCandidates:  3,
		CharThreshold:   50,
	})

	if n.parser.MaxElemsToParse != 100 {
		t.Errorf("MaxElemsToParse = %d, want 100", n.parser.MaxElemsToParse)
	}
	if n.parser.NTopCandidates != 3 {
		t.Errorf("NTopCandidates = %d, want 3", n.parser.NTopCandidates)
	}
	if n.parser.CharThresholds != 50 {
		t.Errorf("CharThresholds = %d, want 50", n.parser.CharThresholds)
	}
}
