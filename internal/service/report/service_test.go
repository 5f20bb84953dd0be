package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/kvstore"
	"farmtrack/internal/repository/records"
	"farmtrack/internal/service/activity"
)

func newService(t *testing.T) (*Service, *records.Store) {
	t.Helper()
	store, err := records.NewStore(context.Background(), kvstore.NewMemoryStore(), nil)
	require.NoError(t, err)
	return NewService(store, activity.NewLogger(store, nil), nil), store
}

func TestGenerateRecordsActivity(t *testing.T) {
	svc, store := newService(t)

	doc, err := svc.Generate(context.Background(), KindSales)
	require.NoError(t, err)
	assert.Equal(t, "sales-performance-report.txt", doc.Filename)
	assert.Contains(t, doc.Content, "SALES PERFORMANCE REPORT")

	entries := store.Activities()
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityReportGenerated, entries[0].Type)
	assert.Equal(t, "Generated sales performance report", entries[0].Details)
}

func TestGenerateUsesSessionFarmName(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	doc, err := svc.Generate(ctx, KindCrop)
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "Farmer: Your Farm")

	user, err := store.AddUser(ctx, models.User{Email: "anna@example.com", FarmName: "Green Acres"})
	require.NoError(t, err)
	require.NoError(t, store.SetCurrentUser(ctx, user))

	doc, err = svc.Generate(ctx, KindCrop)
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "Farmer: Green Acres")
}

func TestGenerateUnknownKind(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.Generate(context.Background(), Kind("weather"))
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Empty(t, store.Activities())
}

func TestExportAllWritesFourFiles(t *testing.T) {
	svc, _ := newService(t)
	dir := filepath.Join(t.TempDir(), "reports")

	require.NoError(t, svc.ExportAll(context.Background(), dir))

	for _, name := range []string{
		"sales-performance-report.txt",
		"crop-analytics-report.txt",
		"livestock-health-report.txt",
		"financial-summary-report.txt",
	} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	}
}

func TestFinancialSummary(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, err := store.AddCrop(ctx, models.Crop{Name: "Maize", Quantity: 500})
	require.NoError(t, err)
	_, err = store.AddSale(ctx, models.Sale{ItemName: "Maize", Amount: 850})
	require.NoError(t, err)

	revenue, inventory, tier := svc.FinancialSummary()
	assert.Equal(t, 850.0, revenue)
	assert.Equal(t, 5000.0, inventory)
	assert.Equal(t, "Growing Steadily", tier)
}
