package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docxtext"
)

// Ensure LoggingArchiveReader implements docxtext.ArchiveReader.
var _ docxtext.ArchiveReader = (*LoggingArchiveReader)(nil)

// LoggingArchiveReader wraps an ArchiveReader with debug logging.
type LoggingArchiveReader struct {
	next   docxtext.ArchiveReader
	logger *slog.Logger
}

// NewLoggingArchiveReader creates a new LoggingArchiveReader.
func NewLoggingArchiveReader(next docxtext.ArchiveReader, logger *slog.Logger) *LoggingArchiveReader {
	return &LoggingArchiveReader{next: next, logger: logger}
}

// ReadEntry logs the entry being read and delegates to the wrapped reader.
func (r *LoggingArchiveReader) ReadEntry(ctx context.Context, path, entry string) (data []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read entry",
			"path", path,
			"entry", entry,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadEntry(ctx, path, entry)
}

// ListEntries delegates to the wrapped reader.
func (r *LoggingArchiveReader) ListEntries(ctx context.Context, path string) (names []string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("list entries",
			"path", path,
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ListEntries(ctx, path)
}
