package core

import "context"

// Backend is the key-value persistence layer the Store writes to.
// Implementations signal an unusable host environment by wrapping
// ErrBackendUnavailable.
type Backend interface {
	// Get returns the value under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error
}

// Initializer is implemented by backends that need setup (mkdir, schema migration).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable is implemented by backends that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever the record under key changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, key string) (<-chan Event, error)
}
