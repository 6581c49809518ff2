package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func TestStore_LoadAbsent(t *testing.T) {
	store := core.NewStore(memory.New())

	notes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
	assert.True(t, store.Loaded())
	assert.True(t, store.Available())
	assert.Equal(t, core.DefaultKey, store.Key())
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	_, c := seed(t)

	store := core.NewStore(backend, core.WithKey("custom"))
	_, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	_, found, err := backend.Get(ctx, "custom")
	require.NoError(t, err)
	assert.True(t, found)

	reopened := core.NewStore(backend, core.WithKey("custom"))
	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, c[0].Equal(got[0]))
	assert.True(t, c[1].Equal(got[1]))

	// Every save replaces the whole record.
	require.NoError(t, store.Save(ctx, c[:1]))
	got, err = core.NewStore(backend, core.WithKey("custom")).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_SaveBeforeLoad(t *testing.T) {
	backend := memory.New()
	store := core.NewStore(backend)

	err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrNotLoaded)
	assert.True(t, core.IsStorageError(err))
	assert.Zero(t, backend.Writes(), "nothing is written before the initial load")
}

func TestStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	backend := memory.New().Unavailable(true)
	store := core.NewStore(backend)

	notes, err := store.Load(ctx)
	assert.Empty(t, notes)
	var unavailable *core.StorageUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.ErrorIs(t, err, core.ErrBackendUnavailable)
	assert.True(t, store.Loaded())
	assert.False(t, store.Available())

	// Saves degrade without touching the backend, even once it comes back.
	backend.Unavailable(false)
	err = store.Save(ctx, []core.Note{})
	require.ErrorAs(t, err, &unavailable)
	assert.Zero(t, backend.Writes())
}

func TestStore_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	blob := []byte(`[{"id":"x1","title":"t","content":"c","createdAt":"not-a-date"}]`)
	require.NoError(t, backend.Set(ctx, core.DefaultKey, blob))

	store := core.NewStore(backend)
	notes, err := store.Load(ctx)
	assert.Empty(t, notes)

	var corrupt *core.StorageCorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "x1", corrupt.ID)
	assert.Equal(t, core.DefaultKey, corrupt.Key)
	assert.True(t, store.Available())

	backup, found, err := backend.Get(ctx, core.DefaultKey+core.CorruptSuffix)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, blob, backup)
}

func TestStore_CorruptBackupDisabled(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Set(ctx, core.DefaultKey, []byte(`garbage`)))

	_, err := core.NewStore(backend, core.WithCorruptBackup(false)).Load(ctx)
	require.Error(t, err)

	_, found, err := backend.Get(ctx, core.DefaultKey+core.CorruptSuffix)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_WriteError(t *testing.T) {
	ctx := context.Background()
	quota := errors.New("quota exceeded")
	backend := memory.New()
	store := core.NewStore(backend)
	_, err := store.Load(ctx)
	require.NoError(t, err)

	backend.FailWrites(quota)
	err = store.Save(ctx, []core.Note{})

	var write *core.StorageWriteError
	require.ErrorAs(t, err, &write)
	assert.ErrorIs(t, err, quota)
	assert.True(t, core.IsStorageError(err))
}

func TestStore_State(t *testing.T) {
	store := core.NewStore(memory.New())
	_, _ = store.Load(context.Background())

	state, ok := store.State().(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, "memory", state.BackendType)
	assert.True(t, state.Loaded)
	assert.NotNil(t, state.LastLoad)
	assert.Nil(t, state.LastSave)
	assert.Equal(t, "store", store.ComponentType())
}
