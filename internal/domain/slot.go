package domain

import "github.com/m04kA/RPM-BookingService/pkg/types"

// TourSlot represents a time slot available for scheduling a property tour
type TourSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int // Spots left for concurrent tours
	TotalSpots      int // Total concurrent tour capacity
}

// IsFull returns true if the slot has no available spots
func (s *TourSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsPartiallyAvailable returns true if the slot has some but not all spots available
func (s *TourSlot) IsPartiallyAvailable() bool {
	return s.AvailableSpots > 0 && s.AvailableSpots < s.TotalSpots
}

// IsFullyAvailable returns true if all spots are available
func (s *TourSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}
