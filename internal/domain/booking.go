package domain

import (
	"time"
)

// RentalTerm represents how a property is rented out
type RentalTerm string

const (
	// TermShort nightly-priced rental with explicit check-in/check-out dates
	TermShort RentalTerm = "short_term"
	// TermLong monthly-priced lease with a duration in months/years
	TermLong RentalTerm = "long_term"
)

// IsValid returns true if the rental term is a known value
func (t RentalTerm) IsValid() bool {
	return t == TermShort || t == TermLong
}

// PaymentOption represents the payment choice for a long-term booking.
// Short-term bookings always pay the full stay up front and carry no option.
type PaymentOption string

const (
	// PaymentDepositOnly only the refundable security deposit is due at booking time
	PaymentDepositOnly PaymentOption = "deposit_only"
	// PaymentFull deposit plus the first rental period are due at booking time
	PaymentFull PaymentOption = "full_payment"
)

// IsValid returns true if the payment option is a known value
func (p PaymentOption) IsValid() bool {
	return p == PaymentDepositOnly || p == PaymentFull
}

// BookingStatus represents the lifecycle state of a booking or a tour
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCancelledByUser     BookingStatus = "cancelled_by_user"
	StatusCancelledByProperty BookingStatus = "cancelled_by_property"
)

// Booking represents a rental booking in the system
type Booking struct {
	ID         int64
	Reference  string // external booking reference (UUID), handed to the customer
	UserID     int64
	PropertyID int64
	RentalTerm RentalTerm

	// Short-term fields: check-in/check-out dates (date part only)
	CheckIn  *time.Time
	CheckOut *time.Time

	// Long-term fields: lease duration and payment option
	DurationMonths int
	DurationYears  int
	PaymentOption  *PaymentOption

	TotalPrice    int64 // full price of the stay / lease term
	DepositAmount int64 // refundable security deposit (long-term only)
	DueToday      int64 // amount payable at booking time
	Currency      string

	Status BookingStatus

	// Denormalized data for history
	PropertyTitle string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string

	// Fixed payment-instructions block attached verbatim at creation time
	PaymentInstructions string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the whole-day difference between check-out and check-in.
// Returns 0 when either date is missing or check-out is not after check-in.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// TotalMonths returns the lease duration in months (years contribute 12 each)
func (b *Booking) TotalMonths() int {
	return b.DurationMonths + b.DurationYears*12
}

// IsActive returns true if the booking still occupies the property dates
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser && b.Status != StatusCancelledByProperty
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByProperty
}

// CanBeCancelled returns true if the booking can still be cancelled.
// Cancelled is a terminal state.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed (payment received)
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// NightsBetween returns the whole-day difference between two dates.
// An incomplete selection (missing date, check-out not after check-in) counts as 0 nights.
func NightsBetween(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	in := DayStart(*checkIn)
	out := DayStart(*checkOut)
	if !out.After(in) {
		return 0
	}

	return int(out.Sub(in) / (24 * time.Hour))
}

// DayStart normalizes a timestamp to the start of its calendar day.
// Two timestamps on the same day but with different time-of-day compare equal
// after normalization.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PropertyBookingsFilter фильтр для получения бронирований объекта
type PropertyBookingsFilter struct {
	PropertyID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
