package core

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// maxIDAttempts bounds id regeneration on collision.
const maxIDAttempts = 3

// Patch selects the fields replaced by EditNote. Nil fields are left alone.
type Patch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// SetTitle returns a copy of p replacing the title.
func (p Patch) SetTitle(title string) Patch {
	p.Title = &title
	return p
}

// SetContent returns a copy of p replacing the content.
func (p Patch) SetContent(content string) Patch {
	p.Content = &content
	return p
}

// SetTags returns a copy of p replacing the tags.
func (p Patch) SetTags(tags []string) Patch {
	p.Tags = &tags
	return p
}

// IsEmpty reports whether the patch replaces nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil
}

// AddNote appends a new note built from in using DefaultFactory.
func AddNote(c []Note, in NoteInput) ([]Note, Note, error) {
	return DefaultFactory.AddNote(c, in)
}

// AddNote validates in, creates the note and returns a new collection with the
// note appended. On error c is returned unchanged.
func (f NoteFactory) AddNote(c []Note, in NoteInput) ([]Note, Note, error) {
	var (
		n   Note
		err error
	)
	for range maxIDAttempts {
		n, err = f.New(in)
		if err != nil {
			return c, Note{}, err
		}
		if _, exists := FindNote(c, n.ID); !exists {
			out := make([]Note, 0, len(c)+1)
			out = append(out, c...)
			return append(out, n), n, nil
		}
	}
	return c, Note{}, ErrDuplicateID
}

// DeleteNote returns c without the note matching id.
func DeleteNote(c []Note, id string) []Note {
	return slices.DeleteFunc(slices.Clone(c), func(n Note) bool {
		return n.ID == id
	})
}

// EditNote returns c with the patch applied to the note matching id.
// ID and CreatedAt are never touched. Title and content are not revalidated.
func EditNote(c []Note, id string, p Patch) []Note {
	out := slices.Clone(c)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		// Invalid bytes become U+FFFD here rather than on the next save.
		if p.Title != nil {
			out[i].Title = strings.ToValidUTF8(*p.Title, string(utf8.RuneError))
		}
		if p.Content != nil {
			out[i].Content = strings.ToValidUTF8(*p.Content, string(utf8.RuneError))
		}
		if p.Tags != nil {
			out[i].Tags = SanitizeTags(*p.Tags)
		}
	}
	return out
}

// FindNote returns the note matching id.
func FindNote(c []Note, id string) (Note, bool) {
	i := slices.IndexFunc(c, func(n Note) bool { return n.ID == id })
	if i < 0 {
		return Note{}, false
	}
	return c[i], true
}

// Merge appends incoming notes that are not already in c, keeping their ids
// and creation times. A note whose id is taken by a different note gets a
// fresh id; an identical note is skipped. Incoming notes with an empty title
// or content are rejected like new ones. It returns the new collection and
// the number of notes added.
func (f NoteFactory) Merge(c, incoming []Note) ([]Note, int) {
	out := slices.Clone(c)
	added := 0
	for _, n := range incoming {
		title, content, err := validate(n.Title, n.Content)
		if err != nil {
			continue
		}
		n.Title, n.Content = title, content
		n.Tags = SanitizeTags(n.Tags)
		if existing, taken := FindNote(out, n.ID); taken || n.ID == "" {
			if taken && existing.Equal(n) {
				continue
			}
			n.ID = f.freshID(out)
			if n.ID == "" {
				continue
			}
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = f.now()
		}
		out = append(out, n)
		added++
	}
	return out, added
}

func (f NoteFactory) freshID(c []Note) string {
	for range maxIDAttempts {
		id := f.newID()
		if _, taken := FindNote(c, id); !taken {
			return id
		}
	}
	return ""
}
