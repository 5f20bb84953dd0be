package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/records"
	"farmtrack/internal/repository/sheets"
	"farmtrack/internal/service/activity"
	"farmtrack/internal/service/aggregate"
)

// SaleHandler exposes sale endpoints. Sales are immutable once recorded; the
// only mutation is deletion.
type SaleHandler struct {
	store    *records.Store
	activity *activity.Logger
	ledger   sheets.SaleLedger // nil when the sheet ledger is not configured
	logger   *zap.Logger
	now      func() time.Time
}

// NewSaleHandler constructs the sales HTTP adapter.
func NewSaleHandler(store *records.Store, activityLog *activity.Logger, ledger sheets.SaleLedger, logger *zap.Logger) *SaleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleHandler{store: store, activity: activityLog, ledger: ledger, logger: logger, now: time.Now}
}

type saleRequest struct {
	ItemType      string  `json:"itemType"`
	ItemName      string  `json:"itemName"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	Buyer         string  `json:"buyer"`
	Date          string  `json:"date"`
	PaymentStatus string  `json:"paymentStatus"`
}

// List returns all sales in insertion order.
func (h *SaleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Sales())
}

// Create records a new sale. Amount is computed here once and stored; it is
// never recomputed afterwards.
func (h *SaleHandler) Create(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ItemType == "" || req.ItemName == "" || req.Buyer == "" || req.Date == "" ||
		req.Quantity == 0 || req.Price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all required fields"})
		return
	}
	if !models.ValidSaleItemType(models.SaleItemType(req.ItemType)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown item type %q", req.ItemType)})
		return
	}
	status := models.PaymentStatus(req.PaymentStatus)
	if req.PaymentStatus == "" {
		status = models.PaymentPaid
	} else if !models.ValidPaymentStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown payment status %q", req.PaymentStatus)})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale := models.Sale{
		ItemType:      models.SaleItemType(req.ItemType),
		ItemName:      req.ItemName,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Amount:        req.Quantity * req.Price,
		Buyer:         req.Buyer,
		Date:          date,
		PaymentStatus: status,
	}

	created, err := h.store.AddSale(c.Request.Context(), sale)
	if err != nil {
		h.logger.Error("failed to add sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save sale"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivitySaleRecorded,
		fmt.Sprintf("Sold %s %s for N$ %.2f", formatQuantity(created.Quantity), created.ItemType, created.Amount))

	if h.ledger != nil {
		if err := h.ledger.AppendSale(c.Request.Context(), created); err != nil {
			// The ledger is a mirror; a failed append never fails the sale.
			h.logger.Warn("failed to append sale to ledger", zap.Int64("sale_id", created.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, created)
}

// Delete removes a sale record.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, found, err := h.store.RemoveSale(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete sale", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sale"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivitySaleDeleted,
		fmt.Sprintf("Deleted sale of %s %s to %s", formatQuantity(removed.Quantity), removed.ItemName, removed.Buyer))

	c.JSON(http.StatusOK, gin.H{"message": "Sale record deleted"})
}

// Summary returns the sales page headline figures.
func (h *SaleHandler) Summary(c *gin.Context) {
	sales := h.store.Sales()
	asOf := h.now()

	c.JSON(http.StatusOK, gin.H{
		"totalSales":   aggregate.SalesTotal(sales),
		"monthlySales": aggregate.SalesTotal(aggregate.SalesInMonth(sales, asOf.Month(), asOf.Year())),
		"pendingSales": aggregate.PendingTotal(sales),
		"topBuyer":     aggregate.TopBuyerName(sales),
	})
}

// ItemOptions lists the names available for a sale's item picker: crop names
// for crop sales, animal types for livestock sales.
func (h *SaleHandler) ItemOptions(c *gin.Context) {
	itemType := models.SaleItemType(c.Query("itemType"))

	options := []string{}
	switch itemType {
	case models.SaleItemCrop:
		for _, crop := range h.store.Crops() {
			options = append(options, crop.Name)
		}
	case models.SaleItemLivestock:
		for _, record := range h.store.Livestock() {
			options = append(options, string(record.Type))
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemType must be crop or livestock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}
