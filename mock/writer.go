package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of docxtext.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, e *docxtext.Extraction) error
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, e *docxtext.Extraction) error {
	return w.WriteExtractionFn(ctx, e)
}
