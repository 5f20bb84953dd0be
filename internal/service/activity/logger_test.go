package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/kvstore"
	"farmtrack/internal/repository/records"
)

func newLogger(t *testing.T) *Logger {
	t.Helper()
	store, err := records.NewStore(context.Background(), kvstore.NewMemoryStore(), nil)
	require.NoError(t, err)
	return NewLogger(store, nil)
}

func TestRecentReturnsReverseChronological(t *testing.T) {
	log := newLogger(t)
	ctx := context.Background()

	log.Record(ctx, models.ActivityCropAdded, "Added 500kg of Maize")
	log.Record(ctx, models.ActivityLivestockAdded, "Added 25 Cattle(s)")
	log.Record(ctx, models.ActivitySaleRecorded, "Sold 100 crop for N$ 850.00")

	recent := log.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, models.ActivitySaleRecorded, recent[0].Type)
	assert.Equal(t, models.ActivityLivestockAdded, recent[1].Type)
}

func TestRecentExcludesSystemEntries(t *testing.T) {
	log := newLogger(t)
	ctx := context.Background()

	log.Record(ctx, models.ActivitySystem, "migration bookkeeping")
	log.Record(ctx, models.ActivityCropAdded, "Added 300kg of Mahangu")

	recent := log.Recent(5)
	require.Len(t, recent, 1)
	assert.Equal(t, models.ActivityCropAdded, recent[0].Type)
}

func TestRecentHandlesShortLog(t *testing.T) {
	log := newLogger(t)

	assert.Empty(t, log.Recent(5))

	log.Record(context.Background(), models.ActivityCropAdded, "Added 10kg of Spinach")
	assert.Len(t, log.Recent(5), 1)
}

func TestActivityTypeLabels(t *testing.T) {
	cases := map[models.ActivityType]string{
		models.ActivityCropAdded:        "Crop Added",
		models.ActivityCropUpdated:      "Crop Updated",
		models.ActivityCropDeleted:      "Crop Deleted",
		models.ActivityLivestockAdded:   "Livestock Added",
		models.ActivityLivestockUpdated: "Livestock Updated",
		models.ActivityLivestockDeleted: "Livestock Deleted",
		models.ActivitySaleRecorded:     "Sale Recorded",
		models.ActivitySaleDeleted:      "Sale Deleted",
		models.ActivityReportGenerated:  "Report Generated",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.Label())
	}

	// Unknown historical values still render.
	assert.Equal(t, "legacy_event", models.ActivityType("legacy_event").Label())
}
