// Package fs stores each record as a JSON file inside a data directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// Ext is the extension of record files.
const Ext = ".json"

// Config holds the configuration for the filesystem backend.
type Config struct {
	Dir          string
	MustExist    bool
	Perm         os.FileMode
	Logger       *slog.Logger
	ErrorHandler func(error) // Called for runtime watcher failures.
}

// Backend implements core.Backend on the filesystem.
type Backend struct {
	mu            sync.RWMutex
	config        Config
	watcherActive bool
	lastEvent     *time.Time
}

// NewBackend creates a new filesystem-backed store.
func NewBackend(config Config) *Backend {
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Backend{config: config}
}

// Dir returns the data directory.
func (b *Backend) Dir() string {
	return b.config.Dir
}

// Initialize ensures the data directory exists.
func (b *Backend) Initialize(ctx context.Context) error {
	if b.config.MustExist {
		info, err := os.Stat(b.config.Dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: data directory does not exist: %s", core.ErrBackendUnavailable, b.config.Dir)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrBackendUnavailable, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: data path is not a directory: %s", core.ErrBackendUnavailable, b.config.Dir)
		}
		return nil
	}

	if err := os.MkdirAll(b.config.Dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create data directory: %v", core.ErrBackendUnavailable, err)
	}
	return nil
}

// Path returns the file holding key.
func (b *Backend) Path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid record key %q", key)
	}
	return filepath.Join(b.config.Dir, key+Ext), nil
}

// Get implements core.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path, err := b.Path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", core.ErrBackendUnavailable, err)
	}
	return data, true, nil
}

// Set implements core.Backend. The file is replaced atomically.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	path, err := b.Path(key)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, value, b.config.Perm); err != nil {
		return err
	}
	b.config.Logger.Debug("record written", "path", path, "bytes", len(value))
	return nil
}

var (
	_ core.Backend     = (*Backend)(nil)
	_ core.Initializer = (*Backend)(nil)
	_ core.Watchable   = (*Backend)(nil)
)
