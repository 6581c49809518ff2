package core

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// KnownTags is the palette offered for tagging. Free-form tags are allowed too.
var KnownTags = []string{"Work", "Personal", "Study", "Ideas"}

// Note is the central entity of the domain.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Tags      []string  `json:"tags" yaml:"tags"`
}

// NoteInput carries the user supplied fields of a new note.
type NoteInput struct {
	Title   string
	Content string
	Tags    []string
}

// HasTag reports whether the note carries exactly tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// Equal compares two notes field by field.
// CreatedAt is compared as an instant and nil tags equal empty tags.
func (n Note) Equal(other Note) bool {
	return n.ID == other.ID &&
		n.Title == other.Title &&
		n.Content == other.Content &&
		n.CreatedAt.Equal(other.CreatedAt) &&
		slices.Equal(n.Tags, other.Tags)
}

// NoteFactory assigns identity and creation time to new notes.
type NoteFactory struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultFactory uses the wall clock and random UUIDs.
var DefaultFactory = NoteFactory{
	Now:   time.Now,
	NewID: uuid.NewString,
}

// New validates in and builds a Note with a fresh id and timestamp.
func (f NoteFactory) New(in NoteInput) (Note, error) {
	title, content, err := validate(in.Title, in.Content)
	if err != nil {
		return Note{}, err
	}

	return Note{
		ID:        f.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: f.now(),
		Tags:      SanitizeTags(in.Tags),
	}, nil
}

// invalidUTF8 is the ValidationError reason for bytes JSON cannot carry.
const invalidUTF8 = "is not valid UTF-8"

// validate returns the trimmed title and content, or a *ValidationError.
func validate(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return "", "", &ValidationError{Field: "title"}
	case !utf8.ValidString(title):
		return "", "", &ValidationError{Field: "title", Reason: invalidUTF8}
	}
	content = strings.TrimSpace(content)
	switch {
	case content == "":
		return "", "", &ValidationError{Field: "content"}
	case !utf8.ValidString(content):
		return "", "", &ValidationError{Field: "content", Reason: invalidUTF8}
	}
	return title, content, nil
}

func (f NoteFactory) now() time.Time {
	clock := f.Now
	if clock == nil {
		clock = time.Now
	}
	// Round(0) drops the monotonic reading so the value survives a round trip.
	return clock().UTC().Round(0)
}

func (f NoteFactory) newID() string {
	if f.NewID == nil {
		return uuid.NewString()
	}
	return f.NewID()
}

// NewNote builds a Note using DefaultFactory.
func NewNote(in NoteInput) (Note, error) {
	return DefaultFactory.New(in)
}

// SanitizeTags trims every tag and drops blank or non-UTF-8 ones, keeping
// order. The result is never nil.
func SanitizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || !utf8.ValidString(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
