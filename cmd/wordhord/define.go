package main

import (
	"fmt"

	"github.com/fwojciec/wordhord"
)

// Run executes the define command.
func (c *DefineCmd) Run(deps *Dependencies) error {
	entries, err := deps.Dictionary.Define(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordhord.ErrorMessage(err))
		return err
	}

	printEntries(deps, entries)
	return nil
}

// printEntries writes one "<word> - <definition>" line per entry.
func printEntries(deps *Dependencies, entries []*wordhord.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stderr, "no entries found")
		return
	}

	for _, e := range entries {
		word := e.Word
		if deps.Highlight != nil {
			word = deps.Highlight.Sprint(e.Word)
		}
		fmt.Fprintln(deps.Stdout, wordhord.FormatEntry(&wordhord.Entry{Word: word, Definition: e.Definition}))
	}
}
