package extractor

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/profextract/internal/logger"
	"github.com/jmylchreest/profextract/pkg/normalizer"
	"github.com/jmylchreest/profextract/pkg/profile"
)

// HTMLExtractor reads a local file as UTF-8 and normalizes it.
type HTMLExtractor struct {
	normalizer  normalizer.Normalizer
	maxFileSize int64
}

// NewHTML creates an HTML extractor.
func NewHTML(opts ...Option) *HTMLExtractor {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewRegex()
	}

	return &HTMLExtractor{
		normalizer:  cfg.Normalizer,
		maxFileSize: cfg.MaxFileSize,
	}
}

// Extract reads and normalizes the file at path. Unreadable files are
// logged and produce an empty result.
func (e *HTMLExtractor) Extract(ctx context.Context, path string) Result {
	content, err := e.readFile(path)
	if err != nil {
		logger.WarnContext(ctx, "file unreadable, using empty text", "path", path, "error", err)
		return Empty()
	}

	return Text(e.normalizer.Normalize(content))
}

// Name returns the extractor type.
func (e *HTMLExtractor) Name() string {
	return "html(" + e.normalizer.Name() + ")"
}

func (e *HTMLExtractor) readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", profile.ErrFileUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if e.maxFileSize > 0 {
		r = io.LimitReader(f, e.maxFileSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", profile.ErrFileUnreadable, err)
	}
	if e.maxFileSize > 0 && int64(len(data)) > e.maxFileSize {
		return "", fmt.Errorf("%w: file exceeds %s", profile.ErrFileUnreadable, humanize.IBytes(uint64(e.maxFileSize)))
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid utf-8", profile.ErrFileUnreadable)
	}

	return string(data), nil
}
