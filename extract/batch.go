package extract

import (
	"context"

	"github.com/fwojciec/docxtext"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of archives extracted at once by Batch.
const DefaultConcurrency = 4

// Result holds the outcome of one extraction in a batch.
type Result struct {
	Request    docxtext.ExtractRequest
	Extraction *docxtext.Extraction
	Err        error
}

// Batch runs independent extractions concurrently and returns results in
// request order. A failing archive does not stop the others; its error is
// recorded in its Result. Cancelling ctx stops requests that have not started.
func Batch(ctx context.Context, extractor docxtext.Extractor, reqs []docxtext.ExtractRequest, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(reqs))

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			results[i].Request = req
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Extraction, results[i].Err = extractor.Extract(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failed returns the number of results with an error.
func Failed(results []Result) int {
	var n int
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
