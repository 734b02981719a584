package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	createBooking "github.com/m04kA/RPM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID     int64   `json:"propertyId"`
	CheckIn        *string `json:"checkIn,omitempty"`  // "2026-03-15" (short_term)
	CheckOut       *string `json:"checkOut,omitempty"` // "2026-03-18" (short_term)
	DurationMonths int     `json:"durationMonths,omitempty"`
	DurationYears  int     `json:"durationYears,omitempty"`
	PaymentOption  *string `json:"paymentOption,omitempty"` // deposit_only | full_payment
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	UserID     int64  `json:"userId"`
	PropertyID int64  `json:"propertyId"`
	RentalTerm string `json:"rentalTerm"`

	CheckIn        *string `json:"checkIn,omitempty"`
	CheckOut       *string `json:"checkOut,omitempty"`
	DurationMonths int     `json:"durationMonths,omitempty"`
	DurationYears  int     `json:"durationYears,omitempty"`
	PaymentOption  *string `json:"paymentOption,omitempty"`

	TotalPrice    int64  `json:"totalPrice"`
	DepositAmount int64  `json:"depositAmount"`
	DueToday      int64  `json:"dueToday"`
	Currency      string `json:"currency"`

	Status string `json:"status"`

	PropertyTitle string  `json:"propertyTitle"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`

	PaymentInstructions string `json:"paymentInstructions"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		UserID:         userID,
		PropertyID:     r.PropertyID,
		DurationMonths: r.DurationMonths,
		DurationYears:  r.DurationYears,
		Notes:          r.Notes,
	}

	// Парсим даты заезда и выезда
	if r.CheckIn != nil {
		checkIn, err := time.Parse(domain.DateFormat, *r.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("invalid checkIn: %v", err)
		}
		req.CheckIn = &checkIn
	}

	if r.CheckOut != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("invalid checkOut: %v", err)
		}
		req.CheckOut = &checkOut
	}

	if r.PaymentOption != nil {
		option := domain.PaymentOption(*r.PaymentOption)
		req.PaymentOption = &option
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:                  resp.ID,
		Reference:           resp.Reference,
		UserID:              resp.UserID,
		PropertyID:          resp.PropertyID,
		RentalTerm:          string(resp.RentalTerm),
		DurationMonths:      resp.DurationMonths,
		DurationYears:       resp.DurationYears,
		TotalPrice:          resp.TotalPrice,
		DepositAmount:       resp.DepositAmount,
		DueToday:            resp.DueToday,
		Currency:            resp.Currency,
		Status:              resp.Status,
		PropertyTitle:       resp.PropertyTitle,
		CustomerName:        resp.CustomerName,
		CustomerEmail:       resp.CustomerEmail,
		CustomerPhone:       resp.CustomerPhone,
		Notes:               resp.Notes,
		PaymentInstructions: resp.PaymentInstructions,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CheckIn != nil {
		checkIn := resp.CheckIn.Format(domain.DateFormat)
		result.CheckIn = &checkIn
	}
	if resp.CheckOut != nil {
		checkOut := resp.CheckOut.Format(domain.DateFormat)
		result.CheckOut = &checkOut
	}
	if resp.PaymentOption != nil {
		option := string(*resp.PaymentOption)
		result.PaymentOption = &option
	}

	return result
}
