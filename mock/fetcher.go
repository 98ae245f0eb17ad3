package mock

import (
	"context"

	"github.com/fwojciec/wordhord"
)

var _ wordhord.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wordhord.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, location string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	return f.FetchFn(ctx, location)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
