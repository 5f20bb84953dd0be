package models

import "time"

// LivestockType enumerates the supported animal categories.
type LivestockType string

const (
	LivestockCattle   LivestockType = "Cattle"
	LivestockGoats    LivestockType = "Goats"
	LivestockSheep    LivestockType = "Sheep"
	LivestockChickens LivestockType = "Chickens"
	LivestockPigs     LivestockType = "Pigs"
	LivestockOther    LivestockType = "Other"
)

// HealthStatus enumerates the health state of a herd.
type HealthStatus string

const (
	HealthHealthy     HealthStatus = "healthy"
	HealthVaccinated  HealthStatus = "vaccinated"
	HealthSick        HealthStatus = "sick"
	HealthQuarantined HealthStatus = "quarantined"
)

// LivestockRecord captures one herd or flock on the farm.
type LivestockRecord struct {
	ID              int64         `json:"id"`
	Type            LivestockType `json:"type"`
	Breed           string        `json:"breed,omitempty"`
	Quantity        int           `json:"quantity"`
	AcquisitionDate time.Time     `json:"acquisitionDate"`
	HealthStatus    HealthStatus  `json:"healthStatus"`
	Notes           string        `json:"notes,omitempty"`
}

// ValidLivestockType reports whether the value is a member of the LivestockType enum.
func ValidLivestockType(t LivestockType) bool {
	switch t {
	case LivestockCattle, LivestockGoats, LivestockSheep, LivestockChickens, LivestockPigs, LivestockOther:
		return true
	}
	return false
}

// ValidHealthStatus reports whether the value is a member of the HealthStatus enum.
func ValidHealthStatus(s HealthStatus) bool {
	switch s {
	case HealthHealthy, HealthVaccinated, HealthSick, HealthQuarantined:
		return true
	}
	return false
}
