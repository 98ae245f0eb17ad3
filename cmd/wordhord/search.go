package main

import (
	"fmt"

	"github.com/fwojciec/wordhord"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	entries, err := deps.Dictionary.Search(deps.Ctx, c.Term, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordhord.ErrorMessage(err))
		return err
	}

	printEntries(deps, entries)
	return nil
}
