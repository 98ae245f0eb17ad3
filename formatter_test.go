package wordhord_test

import (
	"testing"

	"github.com/fwojciec/wordhord"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntry(t *testing.T) {
	t.Parallel()

	e := &wordhord.Entry{Word: "ābannan", Definition: "to summon, command"}

	assert.Equal(t, "ābannan - to summon, command", wordhord.FormatEntry(e))
}

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no entries", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordhord.FormatEntries(nil))
	})

	t.Run("formats one entry per line in order", func(t *testing.T) {
		t.Parallel()

		entries := []*wordhord.Entry{
			{Word: "a", Definition: "first letter"},
			{Word: "b", Definition: "second letter"},
		}

		assert.Equal(t, "a - first letter\nb - second letter", wordhord.FormatEntries(entries))
	})

	t.Run("keeps separator when definition is empty", func(t *testing.T) {
		t.Parallel()

		entries := []*wordhord.Entry{{Word: "ac"}}

		assert.Equal(t, "ac - ", wordhord.FormatEntries(entries))
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts entry with word", func(t *testing.T) {
		t.Parallel()

		e := &wordhord.Entry{Word: "ac"}
		assert.NoError(t, e.Validate())
	})

	t.Run("rejects entry without word", func(t *testing.T) {
		t.Parallel()

		e := &wordhord.Entry{Definition: "but"}
		err := e.Validate()
		assert.Equal(t, wordhord.EINVALID, wordhord.ErrorCode(err))
	})
}
