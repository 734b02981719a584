package domain

import "time"

// TourSlotsConfig represents the stored tour scheduling configuration for a property.
// Absent values fall back to the defaults in constants.go; the slot duration falls
// back to the property's own tour availability template.
type TourSlotsConfig struct {
	ID                  int64
	PropertyID          int64
	SlotDurationMinutes int
	MaxConcurrentTours  int
	AdvanceBookingDays  int // 0 = unlimited
	MinNoticeMinutes    int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance tours can be booked
func (c *TourSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// SupportsParallelTours returns true if several parties may tour the property at once
func (c *TourSlotsConfig) SupportsParallelTours() bool {
	return c.MaxConcurrentTours > 1
}
