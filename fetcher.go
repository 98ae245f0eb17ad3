package wordhord

import "context"

// Fetcher retrieves the HTML text of the dictionary document.
// Implementations exist for local files and remote URLs.
type Fetcher interface {
	// Fetch resolves location and returns its content decoded as UTF-8.
	// Returns EUNAVAILABLE if the document cannot be read.
	Fetch(ctx context.Context, location string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
