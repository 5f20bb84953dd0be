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

// CropHandler exposes crop CRUD endpoints.
type CropHandler struct {
	store    *records.Store
	activity *activity.Logger
	logger   *zap.Logger
}

// NewCropHandler constructs the crop HTTP adapter.
func NewCropHandler(store *records.Store, activityLog *activity.Logger, logger *zap.Logger) *CropHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CropHandler{store: store, activity: activityLog, logger: logger}
}

type cropRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PlantingDate string  `json:"plantingDate"`
	HarvestDate  string  `json:"harvestDate"`
	Quantity     float64 `json:"quantity"`
	Status       string  `json:"status"`
}

func (r cropRequest) toModel() (models.Crop, error) {
	if r.Name == "" || r.Type == "" || r.PlantingDate == "" {
		return models.Crop{}, fmt.Errorf("please fill in all required fields")
	}
	if !models.ValidCropType(models.CropType(r.Type)) {
		return models.Crop{}, fmt.Errorf("unknown crop type %q", r.Type)
	}
	status := models.CropStatus(r.Status)
	if r.Status == "" {
		status = models.CropPlanted
	} else if !models.ValidCropStatus(status) {
		return models.Crop{}, fmt.Errorf("unknown crop status %q", r.Status)
	}
	if r.Quantity < 0 {
		return models.Crop{}, fmt.Errorf("quantity must not be negative")
	}

	planting, err := parseDate(r.PlantingDate)
	if err != nil {
		return models.Crop{}, err
	}
	harvest, err := parseOptionalDate(r.HarvestDate)
	if err != nil {
		return models.Crop{}, err
	}

	return models.Crop{
		Name:         r.Name,
		Type:         models.CropType(r.Type),
		PlantingDate: planting,
		HarvestDate:  harvest,
		Quantity:     r.Quantity,
		Status:       status,
	}, nil
}

// List returns all crops in insertion order.
func (h *CropHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Crops())
}

// Create adds a new crop.
func (h *CropHandler) Create(c *gin.Context) {
	var req cropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	crop, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.AddCrop(c.Request.Context(), crop)
	if err != nil {
		h.logger.Error("failed to add crop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save crop"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivityCropAdded,
		fmt.Sprintf("Added %skg of %s", formatQuantity(created.Quantity), created.Name))

	c.JSON(http.StatusCreated, created)
}

// Update replaces a crop's fields in place.
func (h *CropHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, found := h.store.FindCrop(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}

	var req cropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, found, err := h.store.UpdateCrop(c.Request.Context(), id, patch)
	if err != nil {
		h.logger.Error("failed to update crop", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save crop"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivityCropUpdated,
		fmt.Sprintf("Updated %s to %s", existing.Name, updated.Name))

	c.JSON(http.StatusOK, updated)
}

// Delete removes a crop.
func (h *CropHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, found, err := h.store.RemoveCrop(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete crop", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete crop"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "crop not found"})
		return
	}

	h.activity.Record(c.Request.Context(), models.ActivityCropDeleted,
		fmt.Sprintf("Deleted %s from crops", removed.Name))

	c.JSON(http.StatusOK, gin.H{"message": "Crop deleted"})
}
