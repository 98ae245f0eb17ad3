// Package fs provides a local-file implementation of wordhord.Fetcher.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/wordhord"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements wordhord.Fetcher at compile time.
var _ wordhord.Fetcher = (*Fetcher)(nil)

// Fetcher reads the dictionary document from the local filesystem.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at path and returns its content decoded to UTF-8.
// The encoding is taken from a byte order mark or <meta> charset
// declaration.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", wordhord.Errorf(wordhord.EUNAVAILABLE, "read %s: %v", path, err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", wordhord.Errorf(wordhord.EUNAVAILABLE, "file %q does not exist", path)
	} else if err != nil {
		return "", wordhord.Errorf(wordhord.EUNAVAILABLE, "read %s: %v", path, err)
	}

	// Detection only looks at the first 1024 bytes, so an undeclared
	// document that is valid UTF-8 throughout is taken as UTF-8.
	enc, name, certain := charset.DetermineEncoding(data, "text/html")
	if name == "utf-8" || (!certain && utf8.Valid(data)) {
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", wordhord.Errorf(wordhord.EUNAVAILABLE, "decode %s as %s: %v", path, name, err)
	}
	return string(decoded), nil
}

// Close is a no-op; files are closed after each read.
func (f *Fetcher) Close() error {
	return nil
}
