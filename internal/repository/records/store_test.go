package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/kvstore"
)

func newTestStore(t *testing.T) (*Store, *kvstore.MemoryStore) {
	t.Helper()
	backend := kvstore.NewMemoryStore()
	store, err := NewStore(context.Background(), backend, nil)
	require.NoError(t, err)
	return store, backend
}

func TestAddCropAssignsUniqueMonotonicIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.AddCrop(ctx, models.Crop{Name: "Maize"})
	require.NoError(t, err)
	second, err := store.AddCrop(ctx, models.Crop{Name: "Beans"})
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestCropRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	crop := models.Crop{
		Name:         "Maize",
		Type:         models.CropGrain,
		PlantingDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Quantity:     500,
		Status:       models.CropGrowing,
	}

	created, err := store.AddCrop(ctx, crop)
	require.NoError(t, err)

	found, ok := store.FindCrop(created.ID)
	require.True(t, ok)
	crop.ID = created.ID
	assert.Equal(t, crop, found)

	removed, ok, err := store.RemoveCrop(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, crop, removed)

	_, ok = store.FindCrop(created.ID)
	assert.False(t, ok)

	// Removing again is a silent no-op.
	_, ok, err = store.RemoveCrop(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateCropMissingIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.UpdateCrop(ctx, 42, models.Crop{Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.Crops())
}

func TestUpdateCropKeepsID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.AddCrop(ctx, models.Crop{Name: "Maize", Status: models.CropGrowing})
	require.NoError(t, err)

	updated, ok, err := store.UpdateCrop(ctx, created.ID, models.Crop{Name: "Mahangu", Status: models.CropReady})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Mahangu", updated.Name)

	crops := store.Crops()
	require.Len(t, crops, 1)
	assert.Equal(t, updated, crops[0])
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	crop, err := store.AddCrop(ctx, models.Crop{Name: "Maize", Quantity: 500})
	require.NoError(t, err)
	animal, err := store.AddLivestock(ctx, models.LivestockRecord{Type: models.LivestockCattle, Quantity: 25})
	require.NoError(t, err)
	sale, err := store.AddSale(ctx, models.Sale{ItemName: "Maize", Amount: 850, Buyer: "Local Market"})
	require.NoError(t, err)
	require.NoError(t, store.AppendActivity(ctx, models.ActivityEntry{Type: models.ActivityCropAdded, Details: "Added 500kg of Maize"}))

	reloaded, err := NewStore(ctx, backend, nil)
	require.NoError(t, err)

	foundCrop, ok := reloaded.FindCrop(crop.ID)
	require.True(t, ok)
	assert.Equal(t, "Maize", foundCrop.Name)

	foundAnimal, ok := reloaded.FindLivestock(animal.ID)
	require.True(t, ok)
	assert.Equal(t, 25, foundAnimal.Quantity)

	foundSale, ok := reloaded.FindSale(sale.ID)
	require.True(t, ok)
	assert.Equal(t, 850.0, foundSale.Amount)

	require.Len(t, reloaded.Activities(), 1)

	// New ids keep climbing past the reloaded ones.
	next, err := reloaded.AddCrop(ctx, models.Crop{Name: "Beans"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, sale.ID)
}

func TestSaleLifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sale, err := store.AddSale(ctx, models.Sale{ItemName: "Maize", Quantity: 100, Price: 8.5, Amount: 850})
	require.NoError(t, err)

	removed, ok, err := store.RemoveSale(ctx, sale.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 850.0, removed.Amount)

	_, ok = store.FindSale(sale.ID)
	assert.False(t, ok)
}

func TestActivitiesAreAppendOnlyAndOrdered(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, details := range []string{"first", "second", "third"} {
		require.NoError(t, store.AppendActivity(ctx, models.ActivityEntry{Type: models.ActivitySaleRecorded, Details: details}))
	}

	entries := store.Activities()
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Details)
	assert.Equal(t, "third", entries[2].Details)
}

func TestCurrentUserPointer(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	_, ok := store.CurrentUser()
	assert.False(t, ok)

	user, err := store.AddUser(ctx, models.User{Email: "anna@example.com", FarmName: "Green Acres"})
	require.NoError(t, err)
	require.NoError(t, store.SetCurrentUser(ctx, user))

	current, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "anna@example.com", current.Email)

	// The session pointer survives a reload.
	reloaded, err := NewStore(ctx, backend, nil)
	require.NoError(t, err)
	current, ok = reloaded.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Green Acres", current.FarmName)

	require.NoError(t, store.ClearCurrentUser(ctx))
	_, ok = store.CurrentUser()
	assert.False(t, ok)
}

func TestFindUserByEmail(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddUser(ctx, models.User{Email: "anna@example.com"})
	require.NoError(t, err)

	_, ok := store.FindUserByEmail("anna@example.com")
	assert.True(t, ok)
	_, ok = store.FindUserByEmail("nobody@example.com")
	assert.False(t, ok)
}
