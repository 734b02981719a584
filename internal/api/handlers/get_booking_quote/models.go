package get_booking_quote

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	getBookingQuote "github.com/m04kA/RPM-BookingService/internal/usecase/get_booking_quote"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PropertyID int64  `json:"propertyId"`
	RentalTerm string `json:"rentalTerm"`
	UnitPrice  int64  `json:"unitPrice"`
	Currency   string `json:"currency"`

	Nights      int `json:"nights,omitempty"`
	TotalMonths int `json:"totalMonths,omitempty"`

	PaymentOption *string `json:"paymentOption,omitempty"`

	TotalPrice    int64 `json:"totalPrice"`
	DepositAmount int64 `json:"depositAmount"`
	DueToday      int64 `json:"dueToday"`

	Complete bool `json:"complete"`
}

// ToUseCaseRequest собирает модель use case из query параметров
func ToUseCaseRequest(propertyID int64, checkInStr, checkOutStr, monthsStr, yearsStr, paymentOptionStr string) (*getBookingQuote.Request, error) {
	req := &getBookingQuote.Request{
		PropertyID: propertyID,
	}

	if checkInStr != "" {
		checkIn, err := time.Parse(domain.DateFormat, checkInStr)
		if err != nil {
			return nil, fmt.Errorf("invalid checkIn: %v", err)
		}
		req.CheckIn = &checkIn
	}

	if checkOutStr != "" {
		checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid checkOut: %v", err)
		}
		req.CheckOut = &checkOut
	}

	if monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid months: %v", err)
		}
		req.DurationMonths = months
	}

	if yearsStr != "" {
		years, err := strconv.Atoi(yearsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid years: %v", err)
		}
		req.DurationYears = years
	}

	if paymentOptionStr != "" {
		option := domain.PaymentOption(paymentOptionStr)
		req.PaymentOption = &option
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingQuote.Response) *QuoteResponse {
	result := &QuoteResponse{
		PropertyID:    resp.PropertyID,
		RentalTerm:    string(resp.RentalTerm),
		UnitPrice:     resp.UnitPrice,
		Currency:      resp.Currency,
		Nights:        resp.Nights,
		TotalMonths:   resp.TotalMonths,
		TotalPrice:    resp.TotalPrice,
		DepositAmount: resp.DepositAmount,
		DueToday:      resp.DueToday,
		Complete:      resp.Complete,
	}

	if resp.PaymentOption != nil {
		option := string(*resp.PaymentOption)
		result.PaymentOption = &option
	}

	return result
}
