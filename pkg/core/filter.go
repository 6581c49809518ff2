package core

import (
	"slices"
	"strings"
)

// Query narrows a collection to its visible notes.
// An empty Tag means no tag filter is active.
type Query struct {
	Search string `json:"search,omitempty"`
	Tag    string `json:"tag,omitempty"`
}

// Matches reports whether n satisfies both the search term and the tag.
func (q Query) Matches(n Note) bool {
	return q.matchesSearch(n) && q.matchesTag(n)
}

func (q Query) matchesSearch(n Note) bool {
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term)
}

func (q Query) matchesTag(n Note) bool {
	return q.Tag == "" || n.HasTag(q.Tag)
}

// Apply returns the matching notes in their original order.
func (q Query) Apply(c []Note) []Note {
	out := make([]Note, 0, len(c))
	for _, n := range c {
		if q.Matches(n) {
			out = append(out, n)
		}
	}
	return out
}

// ToggleTag selects tag, or clears the filter when tag is already active.
func (q Query) ToggleTag(tag string) Query {
	if q.Tag == tag {
		q.Tag = ""
		return q
	}
	q.Tag = tag
	return q
}

// VisibleNotes filters c by search term and active tag ("" for none).
func VisibleNotes(c []Note, search, activeTag string) []Note {
	return Query{Search: search, Tag: activeTag}.Apply(c)
}

// CollectTags lists KnownTags followed by every other tag used in c,
// in order of first appearance.
func CollectTags(c []Note) []string {
	tags := slices.Clone(KnownTags)
	for _, n := range c {
		for _, t := range n.Tags {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
