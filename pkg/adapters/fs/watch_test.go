package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

func waitEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed early")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return core.Event{}
}

func TestBackend_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	b := fs.NewBackend(fs.Config{Dir: dir})

	events, err := b.Watch(ctx, "notes")
	require.NoError(t, err)

	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("x"), 0644))

	require.NoError(t, b.Set(ctx, "notes", []byte(`[]`)))
	e := waitEvent(t, events)
	assert.Equal(t, "notes", e.Key)
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)

	require.NoError(t, os.Remove(filepath.Join(dir, "notes.json")))
	for e.Type != core.EventDelete {
		e = waitEvent(t, events)
	}
	assert.Equal(t, "notes", e.Key)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond, "channel closes after cancel")
}

func TestBackend_WatchMissingDir(t *testing.T) {
	b := fs.NewBackend(fs.Config{Dir: filepath.Join(t.TempDir(), "missing")})
	_, err := b.Watch(context.Background(), "notes")
	assert.Error(t, err)
}
