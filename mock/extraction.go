package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of docxtext.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, e *docxtext.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*docxtext.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter docxtext.ExtractionFilter) ([]*docxtext.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, e *docxtext.Extraction) error {
	return s.CreateExtractionFn(ctx, e)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*docxtext.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter docxtext.ExtractionFilter) ([]*docxtext.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
