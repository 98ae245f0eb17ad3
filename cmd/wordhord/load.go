package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/wordhord"
	"golang.org/x/sync/errgroup"
)

// progressInterval is how often a progress dot is printed while loading.
const progressInterval = 500 * time.Millisecond

// load fetches the document at location. If progress is non-nil, a dot is
// written to it every progressInterval until the fetch returns.
func load(ctx context.Context, fetcher wordhord.Fetcher, location string, progress io.Writer) (string, error) {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	var html string
	g.Go(func() error {
		defer close(done)
		var err error
		html, err = fetcher.Fetch(ctx, location)
		return err
	})

	if progress != nil {
		g.Go(func() error {
			ticker := time.NewTicker(progressInterval)
			defer ticker.Stop()

			dots := 0
			for {
				select {
				case <-done:
					if dots > 0 {
						fmt.Fprintln(progress)
					}
					return nil
				case <-ticker.C:
					fmt.Fprint(progress, ".")
					dots++
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return html, nil
}
