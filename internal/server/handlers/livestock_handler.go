package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/records"
	"farmtrack/internal/service/activity"
)

// LivestockHandler exposes livestock CRUD endpoints.
type LivestockHandler struct {
	store    *records.Store
	activity *activity.Logger
	logger   *zap.Logger
}

// NewLivestockHandler constructs the livestock HTTP adapter.
func NewLivestockHandler(store *records.Store, activityLog *activity.Logger, logger *zap.Logger) *LivestockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LivestockHandler{store: store, activity: activityLog, logger: logger}
}

type livestockRequest struct {
	Type            string `json:"type"`
	Breed           string `json:"breed"`
	Quantity        int    `json:"quantity"`
	AcquisitionDate string `json:"acquisitionDate"`
	HealthStatus    string `json:"healthStatus"`
	Notes           string `json:"notes"`
}

func (r livestockRequest) toModel() (models.LivestockRecord, error) {
	if r.Type == "" || r.AcquisitionDate == "" {
		return models.LivestockRecord{}, fmt.Errorf("please fill in all required fields")
	}
	if !models.ValidLivestockType(models.LivestockType(r.Type)) {
		return models.LivestockRecord{}, fmt.Errorf("unknown animal type %q", r.Type)
	}
	if r.Quantity <= 0 {
		return models.LivestockRecord{}, fmt.Errorf("quantity must be a positive number")
	}
	status := models.HealthStatus(r.HealthStatus)
	if r.HealthStatus == "" {
		status = models.HealthHealthy
	} else if !models.ValidHealthStatus(status) {
		return models.LivestockRecord{}, fmt.Errorf("unknown health status %q", r.HealthStatus)
	}

	acquired, err := parseDate(r.AcquisitionDate)
	if err != nil {
		return models.LivestockRecord{}, err
	}

	return models.LivestockRecord{
		Type:            models.LivestockType(r.Type),
		Breed:           r.Breed,
		Quantity:        r.Quantity,
		AcquisitionDate: acquired,
		HealthStatus:    status,
		Notes:           r.Notes,
	}, nil
}

// List returns all livestock records in insertion order.
func (h *LivestockHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Livestock())
}

// Create adds a new livestock record.
func (h *LivestockHandler) Create(c *gin.Context) {
	var req livestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.AddLivestock(c.Request.Context(), record)
	if err != nil {
		h.logger.Error("failed to add livestock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save livestock"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivityLivestockAdded,
		fmt.Sprintf("Added %d %s(s)", created.Quantity, created.Type))

	c.JSON(http.StatusCreated, created)
}

// Update replaces a livestock record's fields in place.
func (h *LivestockHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, found := h.store.FindLivestock(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "livestock record not found"})
		return
	}

	var req livestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, found, err := h.store.UpdateLivestock(c.Request.Context(), id, patch)
	if err != nil {
		h.logger.Error("failed to update livestock", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save livestock"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "livestock record not found"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivityLivestockUpdated,
		fmt.Sprintf("Updated %s to %s", existing.Type, updated.Type))

	c.JSON(http.StatusOK, updated)
}

// Delete removes a livestock record.
func (h *LivestockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, found, err := h.store.RemoveLivestock(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete livestock", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete livestock"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "livestock record not found"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivityLivestockDeleted,
		fmt.Sprintf("Deleted %d %s(s)", removed.Quantity, removed.Type))

	c.JSON(http.StatusOK, gin.H{"message": "Livestock record deleted"})
}
