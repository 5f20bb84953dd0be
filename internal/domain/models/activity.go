package models

import "time"

// ActivityType enumerates the mutation kinds recorded in the audit log.
type ActivityType string

const (
	ActivityCropAdded        ActivityType = "crop_added"
	ActivityCropUpdated      ActivityType = "crop_updated"
	ActivityCropDeleted      ActivityType = "crop_deleted"
	ActivityLivestockAdded   ActivityType = "livestock_added"
	ActivityLivestockUpdated ActivityType = "livestock_updated"
	ActivityLivestockDeleted ActivityType = "livestock_deleted"
	ActivitySaleRecorded     ActivityType = "sale_recorded"
	ActivitySaleDeleted      ActivityType = "sale_deleted"
	ActivityReportGenerated  ActivityType = "report_generated"

	// ActivitySystem is reserved for internal bookkeeping entries and is
	// excluded from the recent-activity view.
	ActivitySystem ActivityType = "system"
)

// Label returns the display label for an activity type. Unknown values fall
// back to the raw string so historical entries always render.
func (t ActivityType) Label() string {
	switch t {
	case ActivityCropAdded:
		return "Crop Added"
	case ActivityCropUpdated:
		return "Crop Updated"
	case ActivityCropDeleted:
		return "Crop Deleted"
	case ActivityLivestockAdded:
		return "Livestock Added"
	case ActivityLivestockUpdated:
		return "Livestock Updated"
	case ActivityLivestockDeleted:
		return "Livestock Deleted"
	case ActivitySaleRecorded:
		return "Sale Recorded"
	case ActivitySaleDeleted:
		return "Sale Deleted"
	case ActivityReportGenerated:
		return "Report Generated"
	case ActivitySystem:
		return "System"
	}
	return string(t)
}

// ActivityEntry is one append-only audit record of a user-visible mutation.
type ActivityEntry struct {
	Timestamp time.Time    `json:"date"`
	Type      ActivityType `json:"type"`
	Details   string       `json:"details"`
}
