package main

import (
	"fmt"

	"github.com/fwojciec/docxtext"
)

// Run executes the entries command.
func (c *EntriesCmd) Run(deps *Dependencies) error {
	names, err := deps.Archives.ListEntries(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docxtext.ErrorMessage(err))
		return err
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
