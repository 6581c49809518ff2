// Package memory provides an in-process core.Backend.
//
// Besides backing the "memory" adapter, it can simulate a host where storage
// is disabled (Unavailable) or where writes fail (FailWrites).
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/jot/pkg/core"
)

// Backend implements core.Backend over a map.
type Backend struct {
	mu          sync.RWMutex
	data        map[string][]byte
	unavailable bool
	writeErr    error
	writes      int
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// Unavailable makes every call fail with core.ErrBackendUnavailable.
func (b *Backend) Unavailable(v bool) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unavailable = v
	return b
}

// FailWrites makes Set return err. A nil err restores normal writes.
func (b *Backend) FailWrites(err error) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
	return b
}

// Get implements core.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.unavailable {
		return nil, false, core.ErrBackendUnavailable
	}
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set implements core.Backend.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unavailable {
		return core.ErrBackendUnavailable
	}
	if b.writeErr != nil {
		return fmt.Errorf("memory set %q: %w", key, b.writeErr)
	}
	b.data[key] = slices.Clone(value)
	b.writes++
	return nil
}

// Writes returns the number of successful Set calls.
func (b *Backend) Writes() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.writes
}

// BackendState exposes internal state for observability.
type BackendState struct {
	Keys        []string `json:"keys"`
	Writes      int      `json:"writes"`
	Unavailable bool     `json:"unavailable"`
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return BackendState{Keys: keys, Writes: b.writes, Unavailable: b.unavailable}
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "memory"
}

var _ core.Backend = (*Backend)(nil)
var _ introspection.Introspectable = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)
