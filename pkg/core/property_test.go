package core_test

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/aretw0/jot/pkg/core"
)

func nonEmpty(s string) bool { return strings.TrimSpace(s) != "" }

func TestProperty_AddGrowsByOneWithUniqueID(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("add appends exactly one note with a fresh id", prop.ForAll(
		func(existing int, title, content string, tags []string) bool {
			var c []core.Note
			for range existing {
				var err error
				c, _, err = core.AddNote(c, core.NoteInput{Title: "seed", Content: "seed"})
				if err != nil {
					return false
				}
			}

			next, n, err := core.AddNote(c, core.NoteInput{Title: title, Content: content, Tags: tags})
			if err != nil || len(next) != len(c)+1 {
				return false
			}
			_, clash := core.FindNote(c, n.ID)
			return !clash && next[len(next)-1].Equal(n)
		},
		gen.IntRange(0, 5),
		gen.AlphaString().SuchThat(nonEmpty),
		gen.AlphaString().SuchThat(nonEmpty),
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("blank title or content is rejected", prop.ForAll(
		func(blank, other string, blankTitle bool) bool {
			in := core.NoteInput{Title: blank, Content: other}
			if !blankTitle {
				in = core.NoteInput{Title: other, Content: blank}
			}
			c := []core.Note{{ID: "keep"}}
			next, _, err := core.AddNote(c, in)
			return core.IsValidationError(err) && len(next) == 1 && next[0].ID == "keep"
		},
		gen.OneConstOf("", " ", "\t", "\n  "),
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_CodecRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	noteGen := gopter.CombineGens(
		gen.Identifier(),
		gen.AlphaString().SuchThat(nonEmpty),
		gen.AnyString().SuchThat(nonEmpty),
		gen.Int64Range(0, 1<<62),
		gen.SliceOf(gen.Identifier()),
	).Map(func(v []interface{}) core.Note {
		return core.Note{
			ID:        v[0].(string),
			Title:     v[1].(string),
			Content:   v[2].(string),
			CreatedAt: time.Unix(0, v[3].(int64)).UTC(),
			Tags:      v[4].([]string),
		}
	})

	properties.Property("decode(encode(c)) == c", prop.ForAll(
		func(notes []core.Note) bool {
			// Ids must be unique within a collection.
			seen := map[string]bool{}
			var c []core.Note
			for _, n := range notes {
				if !seen[n.ID] {
					seen[n.ID] = true
					c = append(c, n)
				}
			}

			data, err := core.EncodeNotes(c)
			if err != nil {
				return false
			}
			got, err := core.DecodeNotes(data)
			if err != nil || len(got) != len(c) {
				return false
			}
			for i := range c {
				if !c[i].Equal(got[i]) {
					t.Logf("mismatch: %+v vs %+v", c[i], got[i])
					return false
				}
			}
			return true
		},
		gen.SliceOf(noteGen),
	))

	properties.TestingRun(t)
}
