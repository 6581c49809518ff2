package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/adapters/sqlite"
	"github.com/aretw0/jot/pkg/core"
)

// SQLiteFile is the database file created inside the data directory.
const SQLiteFile = "jot.db"

// Init builds and initializes the backend selected by the options.
// The 'uri' argument is the data directory for the fs and sqlite adapters
// and is ignored by the memory adapter.
//
// When initialization fails the backend is still returned, wrapped so that
// every call reports core.ErrBackendUnavailable.
func Init(uri string, opts ...Option) (core.Backend, error) {
	return initBackend(context.Background(), uri, applyOptions(opts))
}

func initBackend(ctx context.Context, uri string, o *options) (core.Backend, error) {
	// 1. Check for injected backend
	backend := o.backend

	// 2. Build based on adapter
	if backend == nil {
		dir := resolveDir(uri, o)
		switch o.adapter {
		case AdapterFS:
			backend = fs.NewBackend(fs.Config{
				Dir:          dir,
				MustExist:    o.mustExist,
				Logger:       o.logger,
				ErrorHandler: o.errorHandler,
			})
		case AdapterSQLite:
			backend = sqlite.NewBackend(sqlite.Config{
				Path: filepath.Join(dir, SQLiteFile),
			})
		case AdapterMemory:
			backend = memory.New()
		default:
			return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
		}
	}

	// 3. Run initialization
	if initializer, ok := backend.(core.Initializer); ok {
		if err := initializer.Initialize(ctx); err != nil {
			return offline{backend: backend, err: err}, err
		}
	}
	return backend, nil
}

// resolveDir applies the dev sandbox rules to uri.
func resolveDir(uri string, o *options) string {
	useTemp := o.forceTemp || (IsDevRun() && o.devSafety)
	dir := ResolveDataDir(uri, useTemp)
	if o.logger != nil && useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", uri, "resolved_path", dir)
	}
	return dir
}
