package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/introspection"

	"github.com/aretw0/jot/pkg/core"
)

// offline stands in for a backend whose initialization failed.
type offline struct {
	backend core.Backend
	err     error
}

func (b offline) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, b.unavailable()
}

func (b offline) Set(ctx context.Context, key string, value []byte) error {
	return b.unavailable()
}

func (b offline) unavailable() error {
	return fmt.Errorf("%w: %v", core.ErrBackendUnavailable, b.err)
}

// ComponentType implements introspection.Component.
func (b offline) ComponentType() string {
	if comp, ok := b.backend.(introspection.Component); ok {
		return comp.ComponentType() + " (offline)"
	}
	return "offline"
}

var _ introspection.Component = offline{}
