package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/jot/pkg/core"
)

func TestVisibleNotes(t *testing.T) {
	_, c := seed(t)

	tests := []struct {
		name   string
		search string
		tag    string
		want   []string
	}{
		{"no filter", "", "", []string{"Groceries", "Report"}},
		{"case-insensitive content match", "q3", "", []string{"Report"}},
		{"case-insensitive title match", "GROC", "", []string{"Groceries"}},
		{"unanchored substring", "umb", "", []string{"Report"}},
		{"tag filter", "", "Work", []string{"Report"}},
		{"tag is case-sensitive", "", "work", []string{}},
		{"unused tag", "", "Study", []string{}},
		{"search and tag combine", "milk", "Work", []string{}},
		{"no match", "zzz", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.VisibleNotes(c, tt.search, tt.tag)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestVisibleNotes_PreservesOrder(t *testing.T) {
	f, c := seed(t)
	c, _, _ = f.AddNote(c, core.NoteInput{Title: "Another report", Content: "draft"})

	got := core.VisibleNotes(c, "report", "")
	assert.Equal(t, []string{"Report", "Another report"}, titles(got))
}

func TestQuery_ToggleTag(t *testing.T) {
	q := core.Query{Search: "x"}

	q = q.ToggleTag("Work")
	assert.Equal(t, "Work", q.Tag)

	q = q.ToggleTag("Personal")
	assert.Equal(t, "Personal", q.Tag, "a second tag replaces the first")

	q = q.ToggleTag("Personal")
	assert.Empty(t, q.Tag, "reselecting the active tag clears it")
	assert.Equal(t, "x", q.Search)
}

func TestCollectTags(t *testing.T) {
	_, c := seed(t)
	c = core.EditNote(c, "note-a", core.Patch{}.SetTags([]string{"Personal", "errands"}))

	assert.Equal(t, []string{"Work", "Personal", "Study", "Ideas", "errands"}, core.CollectTags(c))
	assert.Equal(t, core.KnownTags, core.CollectTags(nil))
}
