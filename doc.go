// Package jot is the composition root of a small local notes core.
//
// A session owns one ordered collection of notes. The collection is loaded
// once from a key-value backend, changed through pure operations (add, edit,
// delete) and saved back as a single record after every change. Views of
// the collection are derived with a search term and an optional active tag.
//
// Layers:
//
//   - pkg/core: the note model, codec, store adapter, pure operations, the
//     filter engine and the session Service.
//   - pkg/adapters: backends (fs, sqlite, memory) and a lifecycle bridge for
//     change events.
//   - internal/platform: options, configuration and wiring.
//
// Usage:
//
//	svc, err := jot.New("./.jot", jot.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	note, err := svc.AddNote(ctx, jot.NoteInput{Title: "Report", Content: "Q3 numbers"})
//	svc.ToggleTag("Work")
//	visible := svc.Visible()
//
// Storage failures never fail a mutation; they are kept in a single slot
// readable with svc.LastError().
package jot
