// Package aggregate derives summary statistics from a point-in-time snapshot
// of the farm collections. Every function is pure: no store access, no
// ambient clock. Callers pass the evaluation instant explicitly where a
// calculation depends on "now".
package aggregate

import (
	"math"
	"sort"
	"time"

	"farmtrack/internal/domain/models"
)

// Per-unit valuation constants for the simplified inventory estimate. These
// are bookkeeping figures, not market prices.
const (
	CropUnitValue      = 10.0  // per kg
	LivestockUnitValue = 100.0 // per head
)

// Snapshot is a point-in-time copy of the collections the aggregator reads.
type Snapshot struct {
	Crops     []models.Crop
	Livestock []models.LivestockRecord
	Sales     []models.Sale
}

// TotalAnimals sums livestock head counts across all herds.
func TotalAnimals(livestock []models.LivestockRecord) int {
	total := 0
	for _, l := range livestock {
		total += l.Quantity
	}
	return total
}

// TotalCropQuantity sums crop quantities in kg.
func TotalCropQuantity(crops []models.Crop) float64 {
	total := 0.0
	for _, c := range crops {
		total += c.Quantity
	}
	return total
}

// CropStatusCount counts crops currently in the given status.
func CropStatusCount(crops []models.Crop, status models.CropStatus) int {
	n := 0
	for _, c := range crops {
		if c.Status == status {
			n++
		}
	}
	return n
}

// HealthyHerds counts livestock records whose status is healthy.
func HealthyHerds(livestock []models.LivestockRecord) int {
	n := 0
	for _, l := range livestock {
		if l.HealthStatus == models.HealthHealthy {
			n++
		}
	}
	return n
}

// HealthScore is the percentage of herds in healthy state, rounded to the
// nearest integer. An empty collection scores 0 rather than dividing by zero.
func HealthScore(livestock []models.LivestockRecord) int {
	if len(livestock) == 0 {
		return 0
	}
	return int(math.Round(float64(HealthyHerds(livestock)) / float64(len(livestock)) * 100))
}

// SalesTotal sums the stored amounts of the given sales.
func SalesTotal(sales []models.Sale) float64 {
	total := 0.0
	for _, s := range sales {
		total += s.Amount
	}
	return total
}

// PendingTotal sums amounts of sales whose payment is still pending.
func PendingTotal(sales []models.Sale) float64 {
	total := 0.0
	for _, s := range sales {
		if s.PaymentStatus == models.PaymentPending {
			total += s.Amount
		}
	}
	return total
}

// AverageSaleAmount is total revenue divided by the number of transactions,
// with an empty collection averaging to the total itself (division by one).
func AverageSaleAmount(sales []models.Sale) float64 {
	n := len(sales)
	if n == 0 {
		n = 1
	}
	return SalesTotal(sales) / float64(n)
}

// SalesInMonth filters sales to those dated in the given calendar month and
// year.
func SalesInMonth(sales []models.Sale, month time.Month, year int) []models.Sale {
	out := []models.Sale{}
	for _, s := range sales {
		if s.Date.Month() == month && s.Date.Year() == year {
			out = append(out, s)
		}
	}
	return out
}

// PreviousMonth resolves the calendar month preceding asOf, rolling December
// of the prior year when asOf falls in January.
func PreviousMonth(asOf time.Time) (time.Month, int) {
	if asOf.Month() == time.January {
		return time.December, asOf.Year() - 1
	}
	return asOf.Month() - 1, asOf.Year()
}

// MonthComparison holds this month's revenue against last month's.
type MonthComparison struct {
	Current   float64
	Previous  float64
	ChangePct float64
}

// MonthOverMonth compares sales revenue for the month containing asOf against
// the preceding calendar month.
func MonthOverMonth(sales []models.Sale, asOf time.Time) MonthComparison {
	current := SalesTotal(SalesInMonth(sales, asOf.Month(), asOf.Year()))

	prevMonth, prevYear := PreviousMonth(asOf)
	previous := SalesTotal(SalesInMonth(sales, prevMonth, prevYear))

	return MonthComparison{
		Current:   current,
		Previous:  previous,
		ChangePct: PercentChange(current, previous),
	}
}

// PercentChange computes the relative change from previous to current in
// percent. A change from zero counts as a full positive swing (100); no
// change from zero is 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// CropValue is the simplified valuation of all crops.
func CropValue(crops []models.Crop) float64 {
	return TotalCropQuantity(crops) * CropUnitValue
}

// LivestockValue is the simplified valuation of all livestock.
func LivestockValue(livestock []models.LivestockRecord) float64 {
	return float64(TotalAnimals(livestock)) * LivestockUnitValue
}

// InventoryValue is the combined simplified valuation of crops and livestock.
func InventoryValue(s Snapshot) float64 {
	return CropValue(s.Crops) + LivestockValue(s.Livestock)
}

// ProductRank is one entry in the top-products ranking.
type ProductRank struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// BuyerRank is one entry in the top-buyers ranking.
type BuyerRank struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopProducts groups sales by item name, scores each group by summed amount
// and returns the top n in descending order. Ties keep the group whose first
// sale appeared earlier.
func TopProducts(sales []models.Sale, n int) []ProductRank {
	index := map[string]int{}
	ranks := []ProductRank{}
	for _, s := range sales {
		i, ok := index[s.ItemName]
		if !ok {
			i = len(ranks)
			index[s.ItemName] = i
			ranks = append(ranks, ProductRank{Name: s.ItemName})
		}
		ranks[i].Amount += s.Amount
	}

	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Amount > ranks[j].Amount })

	if n < len(ranks) {
		ranks = ranks[:n]
	}
	return ranks
}

// TopBuyers groups sales by buyer, scores each group by purchase count and
// returns the top n in descending order. Ties keep the buyer whose first
// sale appeared earlier.
func TopBuyers(sales []models.Sale, n int) []BuyerRank {
	index := map[string]int{}
	ranks := []BuyerRank{}
	for _, s := range sales {
		i, ok := index[s.Buyer]
		if !ok {
			i = len(ranks)
			index[s.Buyer] = i
			ranks = append(ranks, BuyerRank{Name: s.Buyer})
		}
		ranks[i].Count++
	}

	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Count > ranks[j].Count })

	if n < len(ranks) {
		ranks = ranks[:n]
	}
	return ranks
}

// TopBuyerName returns the name of the most frequent buyer, or "None" when no
// sales exist.
func TopBuyerName(sales []models.Sale) string {
	buyers := TopBuyers(sales, 1)
	if len(buyers) == 0 {
		return "None"
	}
	return buyers[0].Name
}

// BusinessHealthTier maps total revenue into a named band. Lower bounds are
// inclusive, upper bounds exclusive.
func BusinessHealthTier(totalRevenue float64) string {
	switch {
	case totalRevenue == 0:
		return "Starting Up"
	case totalRevenue < 5000:
		return "Growing Steadily"
	case totalRevenue < 20000:
		return "Thriving Business"
	default:
		return "Highly Successful"
	}
}

// CropsPlantedIn counts crops whose planting date falls in the given month
// and year.
func CropsPlantedIn(crops []models.Crop, month time.Month, year int) int {
	n := 0
	for _, c := range crops {
		if c.PlantingDate.Month() == month && c.PlantingDate.Year() == year {
			n++
		}
	}
	return n
}

// LivestockAcquiredIn counts livestock records acquired in the given month
// and year.
func LivestockAcquiredIn(livestock []models.LivestockRecord, month time.Month, year int) int {
	n := 0
	for _, l := range livestock {
		if l.AcquisitionDate.Month() == month && l.AcquisitionDate.Year() == year {
			n++
		}
	}
	return n
}

// MonthlyStats backs the month-over-month comparison table on the reports
// page.
type MonthlyStats struct {
	Sales              MonthComparison
	NewCrops           int
	NewCropsPrev       int
	LivestockAdded     int
	LivestockAddedPrev int
}

// ComputeMonthlyStats evaluates the reports-page comparison rows as of the
// given instant.
func ComputeMonthlyStats(s Snapshot, asOf time.Time) MonthlyStats {
	prevMonth, prevYear := PreviousMonth(asOf)
	return MonthlyStats{
		Sales:              MonthOverMonth(s.Sales, asOf),
		NewCrops:           CropsPlantedIn(s.Crops, asOf.Month(), asOf.Year()),
		NewCropsPrev:       CropsPlantedIn(s.Crops, prevMonth, prevYear),
		LivestockAdded:     LivestockAcquiredIn(s.Livestock, asOf.Month(), asOf.Year()),
		LivestockAddedPrev: LivestockAcquiredIn(s.Livestock, prevMonth, prevYear),
	}
}
