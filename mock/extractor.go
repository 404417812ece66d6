package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docxtext.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, req docxtext.ExtractRequest) (*docxtext.Extraction, error)
}

func (e *Extractor) Extract(ctx context.Context, req docxtext.ExtractRequest) (*docxtext.Extraction, error) {
	return e.ExtractFn(ctx, req)
}
