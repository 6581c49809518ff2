package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
)

// Watch implements core.Watchable. It reports changes of the file holding key,
// including writes made by other processes.
func (b *Backend) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	path, err := b.Path(key)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: atomic writes replace the file, which drops file watches.
	if err := watcher.Add(b.config.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", b.config.Dir, err)
	}

	events := make(chan core.Event)
	b.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer b.setWatcherActive(false)
		defer watcher.Close()

		target := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				e, ok := mapEvent(key, event)
				if !ok {
					continue
				}
				b.recordEvent()
				b.config.Logger.Debug("record changed", "key", key, "type", e.Type)
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				b.reportError(fmt.Errorf("watcher error: %w", err))
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		b.reportError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

func mapEvent(key string, event fsnotify.Event) (core.Event, bool) {
	e := core.Event{Key: key, Timestamp: time.Now().Unix()}
	switch {
	case event.Has(fsnotify.Create):
		e.Type = core.EventCreate
	case event.Has(fsnotify.Write):
		e.Type = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		e.Type = core.EventDelete
	default:
		return core.Event{}, false
	}
	return e, true
}

func (b *Backend) reportError(err error) {
	if b.config.ErrorHandler != nil {
		b.config.ErrorHandler(err)
		return
	}
	b.config.Logger.Error("watch failed", "dir", b.config.Dir, "error", err)
}
