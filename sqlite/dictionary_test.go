package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/wordhord"
	"github.com/fwojciec/wordhord/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestDictionary(t *testing.T, entries []*wordhord.Entry) *sqlite.Dictionary {
	t.Helper()

	d, err := sqlite.BuildDictionary(context.Background(), setupTestDB(t), entries)
	require.NoError(t, err)
	return d
}

func letters() []*wordhord.Entry {
	return []*wordhord.Entry{
		{Word: "a", Definition: "first letter"},
		{Word: "b", Definition: "second letter"},
	}
}

func words(entries []*wordhord.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Word)
	}
	return out
}

func TestBuildDictionary(t *testing.T) {
	t.Parallel()

	t.Run("indexes all entries", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		n, err := d.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("accepts empty entry sequence", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, nil)

		results, err := d.Search(context.Background(), "letter", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("fails entirely when an entry is rejected", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		entries := []*wordhord.Entry{
			{Word: "a", Definition: "first letter"},
			{Word: "", Definition: "no headword"},
		}

		d, err := sqlite.BuildDictionary(ctx, db, entries)
		require.Error(t, err)
		assert.Nil(t, d)
		assert.Equal(t, wordhord.EINDEX, wordhord.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count))
		assert.Zero(t, count, "no partial index may remain")
	})

	t.Run("refuses to build twice into the same database", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		_, err := sqlite.BuildDictionary(ctx, db, letters())
		require.NoError(t, err)

		_, err = sqlite.BuildDictionary(ctx, db, letters())
		require.Error(t, err)
		assert.Equal(t, wordhord.ECONFLICT, wordhord.ErrorCode(err))
	})

	t.Run("fails with EINDEX on closed database", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(sqlite.MemoryPath)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		_, err := sqlite.BuildDictionary(context.Background(), db, letters())
		require.Error(t, err)
		assert.Equal(t, wordhord.EINDEX, wordhord.ErrorCode(err))
	})
}

func TestDictionary_Search(t *testing.T) {
	t.Parallel()

	t.Run("finds entry by definition text", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "first", 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, &wordhord.Entry{Word: "a", Definition: "first letter"}, results[0])
	})

	t.Run("finds entry by word", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "b", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words(results))
	})

	t.Run("returns empty slice for unknown token", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "nonexistent-token", 0)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("returns empty slice for query without terms", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "  ... ", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("ranks better matches first", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, []*wordhord.Entry{
			{Word: "dæg", Definition: "day, a period of light and work among many other things of the world"},
			{Word: "leoht", Definition: "light, light"},
		})

		results, err := d.Search(context.Background(), "light", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"leoht", "dæg"}, words(results))
	})

	t.Run("matches any term by default", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "first second", 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, words(results))
	})

	t.Run("honours required and excluded terms", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "+letter -first", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words(results))

		results, err = d.Search(context.Background(), "letter AND second", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words(results))
	})

	t.Run("matches phrases in order only", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), `"second letter"`, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words(results))

		results, err = d.Search(context.Background(), `"letter second"`, 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("matches prefixes", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "sec*", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words(results))
	})

	t.Run("folds diacritics", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, []*wordhord.Entry{{Word: "ābannan", Definition: "to summon"}})

		results, err := d.Search(context.Background(), "abannan", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"ābannan"}, words(results))
	})

	t.Run("restricts to named field", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, []*wordhord.Entry{
			{Word: "ac", Definition: "but"},
			{Word: "and", Definition: "ac and"},
		})

		results, err := d.Search(context.Background(), "word:ac", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"ac"}, words(results))

		results, err = d.Search(context.Background(), "definition:ac", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"and"}, words(results))
	})

	t.Run("limits results", func(t *testing.T) {
		t.Parallel()

		entries := make([]*wordhord.Entry, 0, 15)
		for i := range 15 {
			entries = append(entries, &wordhord.Entry{
				Word:       fmt.Sprintf("w%d", i),
				Definition: "common text",
			})
		}
		d := buildTestDictionary(t, entries)
		ctx := context.Background()

		results, err := d.Search(ctx, "common", 0)
		require.NoError(t, err)
		assert.Len(t, results, wordhord.DefaultLimit)

		results, err = d.Search(ctx, "common", 3)
		require.NoError(t, err)
		assert.Len(t, results, 3)

		results, err = d.Search(ctx, "common", 20)
		require.NoError(t, err)
		assert.Len(t, results, 15)
	})

	t.Run("keeps document order among equal scores", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, []*wordhord.Entry{
			{Word: "x", Definition: "same"},
			{Word: "y", Definition: "same"},
			{Word: "z", Definition: "same"},
		})

		results, err := d.Search(context.Background(), "same", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y", "z"}, words(results))
	})

	t.Run("returns EINVALID for unbalanced quotation mark", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), `"first letter`, 0)
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Equal(t, wordhord.EINVALID, wordhord.ErrorCode(err))

		// The index stays usable after a rejected query.
		results, err = d.Search(context.Background(), "first", 0)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("treats FTS5 syntax as plain text", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Search(context.Background(), "NEAR(first) ^second", 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, words(results))
	})
}

func TestDictionary_Define(t *testing.T) {
	t.Parallel()

	t.Run("finds entry by headword", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		results, err := d.Define(context.Background(), "b")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, &wordhord.Entry{Word: "b", Definition: "second letter"}, results[0])
	})

	t.Run("never matches on definition text", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())
		ctx := context.Background()

		results, err := d.Define(ctx, "letter")
		require.NoError(t, err)
		assert.Empty(t, results)

		results, err = d.Define(ctx, "definition:letter")
		require.NoError(t, err)
		assert.Empty(t, results)

		results, err = d.Define(ctx, "b OR definition:first")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, words(results))
	})

	t.Run("returns at most ten results", func(t *testing.T) {
		t.Parallel()

		entries := make([]*wordhord.Entry, 0, 12)
		for i := range 12 {
			entries = append(entries, &wordhord.Entry{Word: "ac", Definition: fmt.Sprintf("sense %d", i)})
		}
		d := buildTestDictionary(t, entries)

		results, err := d.Define(context.Background(), "ac")
		require.NoError(t, err)
		assert.Len(t, results, wordhord.DefaultLimit)
	})

	t.Run("returns EINVALID for malformed query", func(t *testing.T) {
		t.Parallel()

		d := buildTestDictionary(t, letters())

		_, err := d.Define(context.Background(), `"b`)
		require.Error(t, err)
		assert.Equal(t, wordhord.EINVALID, wordhord.ErrorCode(err))
	})
}
