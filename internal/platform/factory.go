package platform

import (
	"context"
	"errors"

	"github.com/aretw0/jot/pkg/core"
)

// New wires backend, store and service, and performs the initial load.
//
//	svc, err := jot.New("./notes", jot.WithAdapter("sqlite"))
//
// Storage problems never fail New: the session starts empty and the error is
// available from svc.LastError(). Only configuration errors are returned.
func New(uri string, opts ...Option) (*core.Service, error) {
	ctx := context.Background()
	o := applyOptions(opts)

	backend, err := initBackend(ctx, uri, o)
	if backend == nil {
		return nil, err
	}
	if err != nil && o.logger != nil {
		o.logger.Warn("storage backend unavailable", "adapter", o.adapter, "error", err)
	}

	store := core.NewStore(backend,
		core.WithKey(o.key),
		core.WithStoreLogger(o.logger),
		core.WithCorruptBackup(o.corruptBackup),
	)

	svcOpts := []core.ServiceOption{core.WithLogger(o.logger)}
	if o.factory != nil {
		svcOpts = append(svcOpts, core.WithFactory(*o.factory))
	}
	service := core.NewService(store, svcOpts...)

	if err := service.Open(ctx); err != nil && !core.IsStorageError(err) {
		return nil, errors.Join(errors.New("failed to open notes"), err)
	}
	return service, nil
}
