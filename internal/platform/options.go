package platform

import (
	"log/slog"

	"github.com/aretw0/jot/pkg/core"
)

// Adapter names.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMemory = "memory"
)

// options holds the internal configuration for the jot service.
type options struct {
	backend       core.Backend
	logger        *slog.Logger
	adapter       string
	key           string
	mustExist     bool
	forceTemp     bool
	devSafety     bool
	corruptBackup bool
	factory       *core.NoteFactory
	errorHandler  func(error)
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:       AdapterFS,
		key:           core.DefaultKey,
		devSafety:     true,
		corruptBackup: true,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithBackend injects a custom key-value backend (e.g. a mock).
// If provided, the adapter selection is skipped.
func WithBackend(b core.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithAdapter selects the storage adapter by name ("fs", "sqlite", "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		if name != "" {
			o.adapter = name
		}
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKey sets the name of the persisted record.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run`/`go test`.
// By default (true) the data directory is re-rooted into a temporary directory.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithCorruptBackup controls whether corrupt records are preserved aside on load.
func WithCorruptBackup(enabled bool) Option {
	return func(o *options) {
		o.corruptBackup = enabled
	}
}

// WithFactory sets the id and clock source for new notes.
func WithFactory(f core.NoteFactory) Option {
	return func(o *options) {
		o.factory = &f
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
