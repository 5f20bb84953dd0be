package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtrack/internal/repository/records"
	"farmtrack/internal/service/activity"
	"farmtrack/internal/service/aggregate"
)

// recentActivityCount is how many audit entries the dashboard shows.
const recentActivityCount = 5

// DashboardHandler serves the aggregate dashboard and reports-page stats.
type DashboardHandler struct {
	store    *records.Store
	activity *activity.Logger
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardHandler constructs the dashboard HTTP adapter.
func NewDashboardHandler(store *records.Store, activityLog *activity.Logger, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{store: store, activity: activityLog, logger: logger, now: time.Now}
}

func (h *DashboardHandler) snapshot() aggregate.Snapshot {
	return aggregate.Snapshot{
		Crops:     h.store.Crops(),
		Livestock: h.store.Livestock(),
		Sales:     h.store.Sales(),
	}
}

// Overview returns the dashboard headline figures and recent activity.
func (h *DashboardHandler) Overview(c *gin.Context) {
	snap := h.snapshot()
	asOf := h.now()

	recent := h.activity.Recent(recentActivityCount)
	activityRows := make([]gin.H, 0, len(recent))
	for _, entry := range recent {
		activityRows = append(activityRows, gin.H{
			"date":    entry.Timestamp,
			"type":    entry.Type,
			"label":   entry.Type.Label(),
			"details": entry.Details,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCrops":     len(snap.Crops),
		"totalLivestock": aggregate.TotalAnimals(snap.Livestock),
		"monthlySales":   aggregate.SalesTotal(aggregate.SalesInMonth(snap.Sales, asOf.Month(), asOf.Year())),
		"inventoryValue": aggregate.InventoryValue(snap),
		"recentActivity": activityRows,
	})
}

// ReportStats returns the reports-page statistics, including the
// month-over-month comparison table.
func (h *DashboardHandler) ReportStats(c *gin.Context) {
	snap := h.snapshot()
	asOf := h.now()
	stats := aggregate.ComputeMonthlyStats(snap, asOf)

	c.JSON(http.StatusOK, gin.H{
		"inventoryValue": aggregate.InventoryValue(snap),
		"monthlyRevenue": stats.Sales.Current,
		"activeCrops":    len(snap.Crops),
		"totalAnimals":   aggregate.TotalAnimals(snap.Livestock),
		"monthlyStats": gin.H{
			"sales": gin.H{
				"current":   stats.Sales.Current,
				"previous":  stats.Sales.Previous,
				"changePct": stats.Sales.ChangePct,
			},
			"newCrops": gin.H{
				"current":  stats.NewCrops,
				"previous": stats.NewCropsPrev,
			},
			"livestockAdded": gin.H{
				"current":  stats.LivestockAdded,
				"previous": stats.LivestockAddedPrev,
			},
		},
	})
}
