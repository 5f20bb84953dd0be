package aggregate

import (
	"fmt"

	"farmtrack/internal/domain/models"
)

// maxRecommendations caps every recommendation list.
const maxRecommendations = 3

// SalesRecommendations returns up to three sales suggestions. With no revenue
// recorded it falls back to a fixed starter set. Rules fire in declaration
// order.
func SalesRecommendations(sales []models.Sale) []string {
	if SalesTotal(sales) == 0 {
		return []string{
			"Start recording your first sales transactions",
			"Focus on building customer relationships",
			"Set achievable monthly revenue targets",
		}
	}

	recs := []string{}
	if len(sales) < 5 {
		recs = append(recs, "Increase sales frequency with current buyers")
	}
	if top := TopProducts(sales, 1); len(top) > 0 {
		recs = append(recs, fmt.Sprintf("Focus on %s - your best performer", top[0].Name))
	}
	recs = append(recs,
		"Explore new markets for your products",
		"Consider seasonal pricing strategies")

	return capRecs(recs)
}

// CropRecommendations returns up to three crop suggestions. An empty crop
// collection yields the fixed fallback triple through the generic rules.
func CropRecommendations(crops []models.Crop) []string {
	recs := []string{}

	if ready := CropStatusCount(crops, models.CropReady); ready > 0 {
		recs = append(recs, fmt.Sprintf("Harvest and sell %d ready crops", ready))
	}
	if len(crops) < 3 {
		recs = append(recs, "Diversify with additional crop types")
	}
	recs = append(recs,
		"Monitor soil health and crop rotation",
		"Plan planting schedule for continuous harvest")

	return capRecs(recs)
}

// LivestockRecommendations returns up to three herd-management suggestions.
func LivestockRecommendations(livestock []models.LivestockRecord) []string {
	recs := []string{}

	unhealthy := len(livestock) - HealthyHerds(livestock)
	if unhealthy > 0 {
		recs = append(recs, fmt.Sprintf("Address health issues in %d herds", unhealthy))
	}
	recs = append(recs,
		"Maintain regular vaccination schedule",
		"Monitor feeding and nutrition programs",
		"Plan breeding for herd growth")

	return capRecs(recs)
}

// FinancialRecommendations returns up to three growth suggestions keyed off
// total revenue. Zero revenue yields a fixed starter set.
func FinancialRecommendations(totalRevenue float64) []string {
	if totalRevenue == 0 {
		return []string{
			"Begin recording all farm transactions",
			"Set up basic accounting system",
			"Track expenses and revenue separately",
		}
	}

	recs := []string{}
	if totalRevenue < 10000 {
		recs = append(recs, "Focus on increasing profit margins")
	}
	recs = append(recs,
		"Reinvest profits into farm expansion",
		"Build emergency fund for seasonal changes",
		"Explore value-added product opportunities")

	return capRecs(recs)
}

func capRecs(recs []string) []string {
	if len(recs) > maxRecommendations {
		return recs[:maxRecommendations]
	}
	return recs
}
