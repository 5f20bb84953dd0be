package models

import "time"

// CropType enumerates the supported crop categories.
type CropType string

const (
	CropGrain     CropType = "grain"
	CropVegetable CropType = "vegetable"
	CropFruit     CropType = "fruit"
	CropLegume    CropType = "legume"
)

// CropStatus enumerates the lifecycle stages of a planted crop.
type CropStatus string

const (
	CropPlanted   CropStatus = "planted"
	CropGrowing   CropStatus = "growing"
	CropReady     CropStatus = "ready"
	CropHarvested CropStatus = "harvested"
)

// Crop captures one planted crop and its expected yield.
type Crop struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Type         CropType   `json:"type"`
	PlantingDate time.Time  `json:"plantingDate"`
	HarvestDate  time.Time  `json:"harvestDate"` // zero when not set
	Quantity     float64    `json:"quantity"`    // kg
	Status       CropStatus `json:"status"`
}

// ValidCropType reports whether the value is a member of the CropType enum.
func ValidCropType(t CropType) bool {
	switch t {
	case CropGrain, CropVegetable, CropFruit, CropLegume:
		return true
	}
	return false
}

// ValidCropStatus reports whether the value is a member of the CropStatus enum.
func ValidCropStatus(s CropStatus) bool {
	switch s {
	case CropPlanted, CropGrowing, CropReady, CropHarvested:
		return true
	}
	return false
}
