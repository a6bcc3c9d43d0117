// Package pipeline runs extraction over every manifest entry in order.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/pkg/extractor"
	"github.com/jmylchreest/profextract/pkg/profile"
)

// Dispatcher extracts text for a manifest entry.
type Dispatcher interface {
	Extract(ctx context.Context, f profile.ProfileFile) extractor.Result
}

// EmitFunc receives each RawProfile as soon as it is produced.
type EmitFunc func(profile.RawProfile) error

// stats counts results by kind for one run.
type stats struct {
	entries     int
	text        int
	placeholder int
	empty       int
}

func (s *stats) add(r extractor.Result) {
	s.entries++
	switch r.Kind {
	case extractor.KindText:
		s.text++
	case extractor.KindPlaceholder:
		s.placeholder++
	default:
		s.empty++
	}
}

// Pipeline drives a dispatcher across a manifest. It is sequential: each
// file is read and released before the next entry starts.
type Pipeline struct {
	dispatcher Dispatcher
}

// New creates a pipeline. A nil dispatcher selects the default extractor
// table.
func New(d Dispatcher) *Pipeline {
	if d == nil {
		d = extractor.NewDispatcher()
	}
	return &Pipeline{dispatcher: d}
}

// Run extracts every entry and returns the results in manifest order. The
// returned slice is never nil.
func (p *Pipeline) Run(ctx context.Context, m profile.Manifest) ([]profile.RawProfile, error) {
	results := make([]profile.RawProfile, 0, len(m.Profiles))
	err := p.Stream(ctx, m, func(r profile.RawProfile) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Stream extracts every entry in order and passes each result to emit.
// An emit error stops the run and is returned unchanged. Cancellation is
// checked between entries.
func (p *Pipeline) Stream(ctx context.Context, m profile.Manifest, emit EmitFunc) error {
	logger.DebugContext(ctx, "pipeline starting", "entries", len(m.Profiles))

	var counts stats
	for i, f := range m.Profiles {
		select {
		case <-ctx.Done():
			return fmt.Errorf("extraction interrupted at entry %d: %w", i, ctx.Err())
		default:
		}

		res := p.dispatcher.Extract(ctx, f)
		counts.add(res)

		if err := emit(profile.RawProfile{URL: f.URL, Text: res.Text}); err != nil {
			return err
		}
	}

	logger.DebugContext(ctx, "pipeline complete",
		"entries", counts.entries,
		"text", counts.text,
		"placeholder", counts.placeholder,
		"empty", counts.empty)
	return nil
}
