package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day, hour, minute int) *time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		expected int
	}{
		{
			name:     "three nights",
			checkIn:  datePtr(2026, time.September, 1, 0, 0),
			checkOut: datePtr(2026, time.September, 4, 0, 0),
			expected: 3,
		},
		{
			name:     "single night",
			checkIn:  datePtr(2026, time.September, 1, 0, 0),
			checkOut: datePtr(2026, time.September, 2, 0, 0),
			expected: 1,
		},
		{
			name: "time of day does not affect the night count",
			// заезд вечером, выезд утром - всё равно 2 ночи
			checkIn:  datePtr(2026, time.September, 1, 23, 30),
			checkOut: datePtr(2026, time.September, 3, 6, 15),
			expected: 2,
		},
		{
			name:     "missing check-in counts as zero",
			checkIn:  nil,
			checkOut: datePtr(2026, time.September, 4, 0, 0),
			expected: 0,
		},
		{
			name:     "missing check-out counts as zero",
			checkIn:  datePtr(2026, time.September, 1, 0, 0),
			checkOut: nil,
			expected: 0,
		},
		{
			name:     "same day counts as zero",
			checkIn:  datePtr(2026, time.September, 1, 10, 0),
			checkOut: datePtr(2026, time.September, 1, 18, 0),
			expected: 0,
		},
		{
			name:     "check-out before check-in counts as zero",
			checkIn:  datePtr(2026, time.September, 4, 0, 0),
			checkOut: datePtr(2026, time.September, 1, 0, 0),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestDayStart(t *testing.T) {
	evening := time.Date(2026, time.September, 1, 23, 59, 58, 123, time.UTC)
	morning := time.Date(2026, time.September, 1, 0, 30, 0, 0, time.UTC)

	assert.True(t, DayStart(evening).Equal(DayStart(morning)))
	assert.Equal(t, 0, DayStart(evening).Hour())
	assert.Equal(t, 0, DayStart(evening).Minute())
}

func TestBooking_TotalMonths(t *testing.T) {
	b := &Booking{DurationMonths: 6, DurationYears: 2}
	assert.Equal(t, 30, b.TotalMonths())

	b = &Booking{DurationYears: 1}
	assert.Equal(t, 12, b.TotalMonths())
}

func TestBooking_StatusTransitions(t *testing.T) {
	tests := []struct {
		status          BookingStatus
		active          bool
		canBeCancelled  bool
		canBeConfirmed  bool
	}{
		{StatusPending, true, true, true},
		{StatusConfirmed, true, true, false},
		{StatusCancelledByUser, false, false, false},
		{StatusCancelledByProperty, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.canBeCancelled, b.CanBeCancelled())
			assert.Equal(t, tt.canBeConfirmed, b.CanBeConfirmed())
		})
	}
}

func TestTour_StatusTransitions(t *testing.T) {
	cancelled := &Tour{Status: StatusCancelledByUser}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())

	pending := &Tour{Status: StatusPending}
	assert.True(t, pending.IsActive())
	assert.True(t, pending.CanBeCancelled())

	confirmed := &Tour{Status: StatusConfirmed}
	assert.True(t, confirmed.IsActive())
	assert.True(t, confirmed.CanBeCancelled())
}

func TestRentalTerm_IsValid(t *testing.T) {
	assert.True(t, TermShort.IsValid())
	assert.True(t, TermLong.IsValid())
	assert.False(t, RentalTerm("weekly").IsValid())
	assert.False(t, RentalTerm("").IsValid())
}

func TestPaymentOption_IsValid(t *testing.T) {
	assert.True(t, PaymentDepositOnly.IsValid())
	assert.True(t, PaymentFull.IsValid())
	assert.False(t, PaymentOption("installments").IsValid())
}
