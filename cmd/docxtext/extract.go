package main

import (
	"fmt"

	"github.com/fwojciec/docxtext"
)

// Run executes the extract command.
// Nothing is written to stdout unless the extraction succeeds.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ex, err := deps.Extractor.Extract(deps.Ctx, request(c.Path, c.ExtractOptions))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docxtext.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Extractions.CreateExtraction(deps.Ctx, ex); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docxtext.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, ex.Text)
	return nil
}
