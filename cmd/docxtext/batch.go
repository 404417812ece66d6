package main

import (
	"fmt"

	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/extract"
	"github.com/fwojciec/docxtext/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	reqs := make([]docxtext.ExtractRequest, 0, len(c.Paths))
	for _, path := range c.Paths {
		reqs = append(reqs, request(path, c.ExtractOptions))
	}

	results := extract.Batch(deps.Ctx, deps.Extractor, reqs, c.Concurrency)

	// Output file name to the input path that claimed it.
	names := make(map[string]string)

	failed := 0
	for _, r := range results {
		if err := c.handle(deps, r, names); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %s\n", r.Request.Path, docxtext.ErrorMessage(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

func (c *BatchCmd) handle(deps *Dependencies, r extract.Result, names map[string]string) error {
	if r.Err != nil {
		return r.Err
	}

	if deps.Writer != nil {
		name := fs.ArchiveToPath(r.Request.Path)
		if prev, ok := names[name]; ok {
			return docxtext.Errorf(docxtext.EINVALID, "output file %s already written for %s", name, prev)
		}
		names[name] = r.Request.Path
	}

	if c.Save {
		if err := deps.Extractions.CreateExtraction(deps.Ctx, r.Extraction); err != nil {
			return err
		}
	}

	if deps.Writer != nil {
		return deps.Writer.WriteExtraction(deps.Ctx, r.Extraction)
	}

	fmt.Fprintf(deps.Stdout, "==> %s <==\n%s\n", r.Request.Path, r.Extraction.Text)
	return nil
}
