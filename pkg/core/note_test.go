package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

// fixedFactory returns a factory with a frozen clock and sequential ids.
func fixedFactory(t *testing.T) core.NoteFactory {
	t.Helper()
	next := 0
	return core.NoteFactory{
		Now: func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 123456789, time.UTC) },
		NewID: func() string {
			next++
			return "note-" + string(rune('a'+next-1))
		},
	}
}

func TestNewNote(t *testing.T) {
	n, err := core.NewNote(core.NoteInput{Title: "  Groceries ", Content: "\tmilk\n"})
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, "milk", n.Content)
	assert.NotNil(t, n.Tags, "omitted tags default to an empty slice")
	assert.Empty(t, n.Tags)
	assert.Equal(t, time.UTC, n.CreatedAt.Location())
	assert.WithinDuration(t, time.Now(), n.CreatedAt, time.Minute)
}

func TestNewNote_Validation(t *testing.T) {
	tests := []struct {
		name      string
		in        core.NoteInput
		wantField string
	}{
		{"empty title", core.NoteInput{Title: "", Content: "body"}, "title"},
		{"blank title", core.NoteInput{Title: "   ", Content: "body"}, "title"},
		{"empty content", core.NoteInput{Title: "t", Content: ""}, "content"},
		{"blank content", core.NoteInput{Title: "t", Content: "\n\t "}, "content"},
		{"both empty", core.NoteInput{}, "title"},
		{"invalid utf-8 title", core.NoteInput{Title: "bad\xffbyte", Content: "body"}, "title"},
		{"invalid utf-8 content", core.NoteInput{Title: "t", Content: "\xc3\x28"}, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewNote(tt.in)
			require.Error(t, err)

			var verr *core.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.True(t, core.IsValidationError(err))
			assert.False(t, core.IsStorageError(err))
		})
	}
}

func TestNewNote_TagsAreSanitized(t *testing.T) {
	f := fixedFactory(t)
	n, err := f.New(core.NoteInput{Title: "t", Content: "c", Tags: []string{"Work", "", "  ", " urgent ", "Work"}})
	require.NoError(t, err)

	// Duplicates are not prevented by the model.
	assert.Equal(t, []string{"Work", "urgent", "Work"}, n.Tags)
	assert.Equal(t, "note-a", n.ID)
	assert.True(t, n.HasTag("urgent"))
	assert.False(t, n.HasTag("work"), "tag match is case-sensitive")
}

func TestNote_Equal(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	a := core.Note{ID: "1", Title: "t", Content: "c", CreatedAt: at}
	b := a
	b.Tags = []string{}
	b.CreatedAt = at.In(time.FixedZone("X", 3600))

	assert.True(t, a.Equal(b))

	b.Title = "other"
	assert.False(t, a.Equal(b))
}
