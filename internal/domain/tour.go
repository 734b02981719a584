package domain

import (
	"time"

	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// Tour represents a scheduled property viewing appointment.
// Tours share the booking lifecycle states (pending/confirmed/cancelled_*).
type Tour struct {
	ID              int64
	Reference       string // external tour reference (UUID)
	UserID          int64
	PropertyID      int64
	TourDate        time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	PropertyTitle string
	CustomerName  string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the tour still occupies its slot
func (t *Tour) IsActive() bool {
	return t.Status != StatusCancelledByUser && t.Status != StatusCancelledByProperty
}

// CanBeCancelled returns true if the tour can still be cancelled
func (t *Tour) CanBeCancelled() bool {
	return t.Status == StatusPending || t.Status == StatusConfirmed
}
