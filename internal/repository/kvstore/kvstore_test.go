package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "crops")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "crops", []byte(`[{"id":1}]`)))

	value, ok, err := store.Get(ctx, "crops")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(value))

	require.NoError(t, store.Delete(ctx, "crops"))
	_, ok, err = store.Get(ctx, "crops")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(ctx, "crops"))
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "farmtrack.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "sales", []byte(`[{"id":7,"amount":850}]`)))
	require.NoError(t, store.Set(ctx, "currentUser", []byte(`{"email":"anna@example.com"}`)))
	require.NoError(t, store.Delete(ctx, "currentUser"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get(ctx, "sales")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":7,"amount":850}]`, string(value))

	_, ok, err = reopened.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreRejectsInvalidJSON(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	err = store.Set(context.Background(), "crops", []byte("not-json"))
	assert.Error(t, err)
}
