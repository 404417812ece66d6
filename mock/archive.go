package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.ArchiveReader = (*ArchiveReader)(nil)

// ArchiveReader is a mock implementation of docxtext.ArchiveReader.
type ArchiveReader struct {
	ReadEntryFn   func(ctx context.Context, path, entry string) ([]byte, error)
	ListEntriesFn func(ctx context.Context, path string) ([]string, error)
}

func (r *ArchiveReader) ReadEntry(ctx context.Context, path, entry string) ([]byte, error) {
	return r.ReadEntryFn(ctx, path, entry)
}

func (r *ArchiveReader) ListEntries(ctx context.Context, path string) ([]string, error) {
	return r.ListEntriesFn(ctx, path)
}

var _ docxtext.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of docxtext.Decoder.
type Decoder struct {
	DecodeFn func(b []byte, encoding string) (string, error)
}

func (d *Decoder) Decode(b []byte, encoding string) (string, error) {
	return d.DecodeFn(b, encoding)
}

var _ docxtext.Stripper = (*Stripper)(nil)

// Stripper is a mock implementation of docxtext.Stripper.
type Stripper struct {
	StripFn func(markup string) (string, error)
}

func (s *Stripper) Strip(markup string) (string, error) {
	return s.StripFn(markup)
}
