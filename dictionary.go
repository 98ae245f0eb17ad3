package wordhord

import "context"

// DefaultLimit is the number of results returned when no limit is given.
const DefaultLimit = 10

// Field names an indexed entry field that queries may target.
const (
	FieldWord       = "word"
	FieldDefinition = "definition"
)

// Dictionary is a read-only full-text index over dictionary entries.
// A Dictionary is built once from a complete entry sequence; there are no
// update or delete operations.
type Dictionary interface {
	// Search matches query against both word and definition text and returns
	// at most limit entries ordered by descending relevance. A limit <= 0
	// means DefaultLimit. Returns EINVALID if the query does not parse.
	Search(ctx context.Context, query string, limit int) ([]*Entry, error)

	// Define matches query against headwords only and returns at most
	// DefaultLimit entries ordered by descending relevance.
	// Returns EINVALID if the query does not parse.
	Define(ctx context.Context, query string) ([]*Entry, error)
}
