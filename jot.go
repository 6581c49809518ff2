package jot

import (
	"log/slog"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// NoteInput is a public alias for the fields of a new note.
type NoteInput = core.NoteInput

// Patch is a public alias for a partial note update.
type Patch = core.Patch

// Query is a public alias for the search/tag filter.
type Query = core.Query

// Service is a public alias for the session service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithAdapter selects the storage adapter by name ("fs", "sqlite", "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithBackend allows injecting a custom key-value backend.
func WithBackend(b core.Backend) Option {
	return platform.WithBackend(b)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithKey sets the name of the persisted record.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the temp-dir sandbox used under `go run`/`go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithCorruptBackup controls whether corrupt records are preserved on load.
func WithCorruptBackup(enabled bool) Option {
	return platform.WithCorruptBackup(enabled)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a Service over the data directory at path and loads it.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// --- Pure operations ---

// AddNote appends a validated note to c.
func AddNote(c []Note, in NoteInput) ([]Note, Note, error) {
	return core.AddNote(c, in)
}

// DeleteNote removes the note with id from c.
func DeleteNote(c []Note, id string) []Note {
	return core.DeleteNote(c, id)
}

// EditNote applies p to the note with id in c.
func EditNote(c []Note, id string, p Patch) []Note {
	return core.EditNote(c, id, p)
}

// VisibleNotes filters c by search term and active tag ("" for none).
func VisibleNotes(c []Note, search, activeTag string) []Note {
	return core.VisibleNotes(c, search, activeTag)
}

// --- Utils ---

// FindRoot looks upwards for a directory holding .jot or jot.yaml.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ResolveDataDir determines the data directory based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
