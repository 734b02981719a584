package models

import (
	"errors"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// ConfirmBookingRequest запрос на подтверждение бронирования
type ConfirmBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetPropertyBookingsRequest запрос на получение бронирований объекта
type GetPropertyBookingsRequest struct {
	UserID          int64      `json:"userId"`
	PropertyID      int64      `json:"propertyId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPropertyBookingsRequest) ToDomainFilter() (domain.PropertyBookingsFilter, error) {
	filter := domain.PropertyBookingsFilter{
		PropertyID:      r.PropertyID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	UserID     int64  `json:"userId"`
	PropertyID int64  `json:"propertyId"`
	RentalTerm string `json:"rentalTerm"`

	CheckIn        *string `json:"checkIn,omitempty"`  // "2026-03-15" (short_term)
	CheckOut       *string `json:"checkOut,omitempty"` // "2026-03-18" (short_term)
	DurationMonths int     `json:"durationMonths,omitempty"`
	DurationYears  int     `json:"durationYears,omitempty"`
	PaymentOption  *string `json:"paymentOption,omitempty"`

	TotalPrice    int64  `json:"totalPrice"`
	DepositAmount int64  `json:"depositAmount"`
	DueToday      int64  `json:"dueToday"`
	Currency      string `json:"currency"`

	Status string `json:"status"`

	// Денормализованные данные
	PropertyTitle string  `json:"propertyTitle"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`

	PaymentInstructions string `json:"paymentInstructions"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                  b.ID,
		Reference:           b.Reference,
		UserID:              b.UserID,
		PropertyID:          b.PropertyID,
		RentalTerm:          string(b.RentalTerm),
		DurationMonths:      b.DurationMonths,
		DurationYears:       b.DurationYears,
		TotalPrice:          b.TotalPrice,
		DepositAmount:       b.DepositAmount,
		DueToday:            b.DueToday,
		Currency:            b.Currency,
		Status:              string(b.Status),
		PropertyTitle:       b.PropertyTitle,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		Notes:               b.Notes,
		PaymentInstructions: b.PaymentInstructions,
		CancellationReason:  b.CancellationReason,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}

	// Даты заезда/выезда присутствуют только у краткосрочной аренды
	if b.CheckIn != nil {
		checkIn := b.CheckIn.Format(domain.DateFormat)
		resp.CheckIn = &checkIn
	}
	if b.CheckOut != nil {
		checkOut := b.CheckOut.Format(domain.DateFormat)
		resp.CheckOut = &checkOut
	}

	if b.PaymentOption != nil {
		option := string(*b.PaymentOption)
		resp.PaymentOption = &option
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByProperty,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
