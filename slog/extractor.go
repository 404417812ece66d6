// Package slog provides logging decorators for docxtext services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docxtext"
)

// Ensure LoggingExtractor implements docxtext.Extractor.
var _ docxtext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   docxtext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docxtext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, req docxtext.ExtractRequest) (ex *docxtext.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"path", req.Path,
			"entry", req.Entry,
			"mode", string(req.Mode),
			"duration", time.Since(begin),
		}
		if ex != nil {
			attrs = append(attrs, "length", len([]rune(ex.Text)), "total", ex.TotalLength)
		}
		if err != nil {
			attrs = append(attrs, "code", docxtext.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, req)
}
