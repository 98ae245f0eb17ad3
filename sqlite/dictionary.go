package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/wordhord"
)

// Compile-time interface verification.
var _ wordhord.Dictionary = (*Dictionary)(nil)

// Dictionary implements wordhord.Dictionary using an SQLite FTS5 table.
// A Dictionary is only obtained from BuildDictionary and never modified
// afterwards.
type Dictionary struct {
	db *DB
}

// BuildDictionary indexes entries in document order and returns the frozen
// Dictionary. All entries are written in one transaction: if any entry is
// rejected nothing is indexed and EINDEX is returned. Building into a
// database that already holds entries returns ECONFLICT.
func BuildDictionary(ctx context.Context, db *DB, entries []*wordhord.Entry) (*Dictionary, error) {
	d := &Dictionary{db: db}

	n, err := d.Count(ctx)
	if err != nil {
		return nil, wordhord.Errorf(wordhord.EINDEX, "failed to inspect index: %v", err)
	}
	if n > 0 {
		return nil, wordhord.Errorf(wordhord.ECONFLICT, "dictionary already built with %d entries", n)
	}

	if err := d.insertAll(ctx, entries); err != nil {
		if wordhord.ErrorCode(err) == wordhord.EINDEX {
			return nil, err
		}
		return nil, wordhord.Errorf(wordhord.EINDEX, "failed to build dictionary: %v", err)
	}

	return d, nil
}

func (d *Dictionary) insertAll(ctx context.Context, entries []*wordhord.Entry) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO entries (rowid, word, definition) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return wordhord.Errorf(wordhord.EINDEX, "entry %d rejected: %s", i+1, wordhord.ErrorMessage(err))
		}
		if _, err := stmt.ExecContext(ctx, i+1, e.Word, e.Definition); err != nil {
			return fmt.Errorf("failed to index entry %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of indexed entries.
func (d *Dictionary) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Search matches query against word and definition text.
func (d *Dictionary) Search(ctx context.Context, query string, limit int) ([]*wordhord.Entry, error) {
	if limit <= 0 {
		limit = wordhord.DefaultLimit
	}
	return d.find(ctx, query, "", limit)
}

// Define matches query against headwords only.
func (d *Dictionary) Define(ctx context.Context, query string) ([]*wordhord.Entry, error) {
	return d.find(ctx, query, wordhord.FieldWord, wordhord.DefaultLimit)
}

func (d *Dictionary) find(ctx context.Context, query, column string, limit int) ([]*wordhord.Entry, error) {
	q, err := wordhord.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	if column != "" {
		var ok bool
		if q, ok = restrict(q, column); !ok {
			return []*wordhord.Entry{}, nil
		}
	}
	if q.Empty() {
		return []*wordhord.Entry{}, nil
	}

	// bm25() scores better matches lower; rowid keeps ties in document order.
	rows, err := d.db.QueryContext(ctx, `
		SELECT word, definition
		FROM entries
		WHERE entries MATCH ?
		ORDER BY bm25(entries), rowid
		LIMIT ?
	`, matchExpression(q, column), limit)
	if err != nil {
		return nil, queryError(query, err)
	}
	defer rows.Close()

	entries := []*wordhord.Entry{}
	for rows.Next() {
		var e wordhord.Entry
		if err := rows.Scan(&e.Word, &e.Definition); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(query, err)
	}

	return entries, nil
}

// queryError reports FTS5 query rejections as EINVALID.
func queryError(query string, err error) error {
	if strings.Contains(err.Error(), "fts5") {
		return wordhord.Errorf(wordhord.EINVALID, "invalid query %q: %v", query, err)
	}
	return err
}
