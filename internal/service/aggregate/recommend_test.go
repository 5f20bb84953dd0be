package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtrack/internal/domain/models"
)

func TestSalesRecommendationsDefaultSet(t *testing.T) {
	recs := SalesRecommendations(nil)
	assert.Equal(t, []string{
		"Start recording your first sales transactions",
		"Focus on building customer relationships",
		"Set achievable monthly revenue targets",
	}, recs)
}

func TestSalesRecommendationsRuleOrder(t *testing.T) {
	sales := []models.Sale{{ItemName: "Maize", Amount: 850}}

	recs := SalesRecommendations(sales)
	require.Len(t, recs, 3)
	assert.Equal(t, "Increase sales frequency with current buyers", recs[0])
	assert.Equal(t, "Focus on Maize - your best performer", recs[1])
	assert.Equal(t, "Explore new markets for your products", recs[2])
}

func TestSalesRecommendationsCap(t *testing.T) {
	sales := make([]models.Sale, 6)
	for i := range sales {
		sales[i] = models.Sale{ItemName: "Maize", Amount: 100}
	}

	recs := SalesRecommendations(sales)
	require.Len(t, recs, 3)
	// With five or more sales the frequency rule no longer fires.
	assert.Equal(t, "Focus on Maize - your best performer", recs[0])
}

func TestCropRecommendationsEmptyCollection(t *testing.T) {
	recs := CropRecommendations(nil)
	assert.Equal(t, []string{
		"Diversify with additional crop types",
		"Monitor soil health and crop rotation",
		"Plan planting schedule for continuous harvest",
	}, recs)
}

func TestCropRecommendationsReadyFirst(t *testing.T) {
	crops := []models.Crop{
		{Name: "Maize", Status: models.CropReady},
		{Name: "Beans", Status: models.CropReady},
		{Name: "Mahangu", Status: models.CropGrowing},
		{Name: "Spinach", Status: models.CropPlanted},
	}

	recs := CropRecommendations(crops)
	require.Len(t, recs, 3)
	assert.Equal(t, "Harvest and sell 2 ready crops", recs[0])
	assert.Equal(t, "Monitor soil health and crop rotation", recs[1])
}

func TestLivestockRecommendations(t *testing.T) {
	t.Run("empty collection gets the generic triple", func(t *testing.T) {
		assert.Equal(t, []string{
			"Maintain regular vaccination schedule",
			"Monitor feeding and nutrition programs",
			"Plan breeding for herd growth",
		}, LivestockRecommendations(nil))
	})

	t.Run("unhealthy herds rule fires first", func(t *testing.T) {
		herds := []models.LivestockRecord{
			{HealthStatus: models.HealthHealthy},
			{HealthStatus: models.HealthSick},
			{HealthStatus: models.HealthQuarantined},
		}
		recs := LivestockRecommendations(herds)
		require.Len(t, recs, 3)
		assert.Equal(t, "Address health issues in 2 herds", recs[0])
	})
}

func TestFinancialRecommendations(t *testing.T) {
	t.Run("zero revenue gets the starter set", func(t *testing.T) {
		assert.Equal(t, []string{
			"Begin recording all farm transactions",
			"Set up basic accounting system",
			"Track expenses and revenue separately",
		}, FinancialRecommendations(0))
	})

	t.Run("low revenue leads with margins", func(t *testing.T) {
		recs := FinancialRecommendations(2500)
		require.Len(t, recs, 3)
		assert.Equal(t, "Focus on increasing profit margins", recs[0])
	})

	t.Run("high revenue skips the margins rule", func(t *testing.T) {
		recs := FinancialRecommendations(15000)
		require.Len(t, recs, 3)
		assert.Equal(t, "Reinvest profits into farm expansion", recs[0])
	})
}
