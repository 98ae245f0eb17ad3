package main

import (
	"context"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/fwojciec/wordhord"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Dictionary wordhord.Dictionary
	Highlight  *color.Color
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File    string        `short:"f" xor:"source" required:"" env:"WORDHORD_FILE" type:"path" help:"Dictionary HTML file"`
	URL     string        `short:"u" xor:"source" required:"" env:"WORDHORD_URL" help:"Dictionary HTML URL"`
	Verbose bool          `short:"v" help:"Log fetch, extraction and query details to stderr"`
	Timeout time.Duration `default:"30s" help:"Timeout for a single HTTP request"`
	Retries int           `default:"3" help:"Retries for failed HTTP requests"`

	Search SearchCmd `cmd:"" help:"Search words and definitions"`
	Define DefineCmd `cmd:"" help:"Look up headwords"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term  string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results"`
}

// DefineCmd is the "define" subcommand.
type DefineCmd struct {
	Term string `arg:"" help:"Headword query"`
}
