package platform_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func TestNew_FS(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	svc, err := platform.New(dir)
	require.NoError(t, err)
	require.NoError(t, svc.LastError())

	_, err = svc.AddNote(ctx, core.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.NoError(t, svc.LastError())

	_, err = os.Stat(filepath.Join(dir, core.DefaultKey+".json"))
	assert.NoError(t, err)
}

func TestNew_SQLiteAndKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	svc, err := platform.New(dir, platform.WithAdapter(platform.AdapterSQLite), platform.WithKey("work"))
	require.NoError(t, err)
	_, err = svc.AddNote(ctx, core.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.NoError(t, svc.LastError())

	assert.Equal(t, "work", svc.Store().Key())
	_, err = os.Stat(filepath.Join(dir, platform.SQLiteFile))
	assert.NoError(t, err)
}

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := platform.New(t.TempDir(), platform.WithAdapter("s3"))
	assert.ErrorContains(t, err, "unknown adapter")
}

func TestNew_MissingDirDegrades(t *testing.T) {
	var logs bytes.Buffer
	logger := platform.NewLogger(&logs, platform.LogConfig{Level: "warn"}, false)

	svc, err := platform.New(filepath.Join(t.TempDir(), "missing"),
		platform.WithMustExist(true),
		platform.WithLogger(logger),
	)
	require.NoError(t, err, "storage problems never fail New")

	var unavailable *core.StorageUnavailableError
	require.ErrorAs(t, svc.LastError(), &unavailable)
	assert.Empty(t, svc.Notes())
	assert.Contains(t, logs.String(), "storage backend unavailable")

	state := svc.State().(core.ServiceState)
	assert.Equal(t, "fs (offline)", state.BackendType)
}

func TestNew_InjectedBackend(t *testing.T) {
	backend := memory.New()
	svc, err := platform.New("", platform.WithBackend(backend), platform.WithFactory(core.NoteFactory{
		NewID: func() string { return "fixed" },
	}))
	require.NoError(t, err)

	n, err := svc.AddNote(context.Background(), core.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", n.ID)
	assert.Equal(t, 1, backend.Writes())
}

func TestInit_Memory(t *testing.T) {
	b, err := platform.Init("", platform.WithAdapter(platform.AdapterMemory))
	require.NoError(t, err)
	_, ok := b.(*memory.Backend)
	assert.True(t, ok)
}
