package get_booking_quote

import (
	"fmt"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствующие даты и нулевая длительность - валидные состояния (цена 0),
// отрицательные длительности и заведомо некорректные комбинации - ошибка.
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.DurationMonths < 0 {
		return fmt.Errorf("%w: durationMonths must be non-negative", ErrInvalidInput)
	}

	if req.DurationYears < 0 {
		return fmt.Errorf("%w: durationYears must be non-negative", ErrInvalidInput)
	}

	if req.PaymentOption != nil && !req.PaymentOption.IsValid() {
		return fmt.Errorf("%w: unknown payment option %q", ErrInvalidInput, *req.PaymentOption)
	}

	return nil
}

// validateTermFields проверяет согласованность полей запроса с типом аренды объекта
func validateTermFields(term domain.RentalTerm, req *Request) error {
	switch term {
	case domain.TermShort:
		// Опция оплаты определена только для долгосрочной аренды
		if req.PaymentOption != nil {
			return fmt.Errorf("%w: paymentOption is not applicable to short-term rentals", ErrInvalidInput)
		}
	case domain.TermLong:
		if req.CheckIn != nil || req.CheckOut != nil {
			return fmt.Errorf("%w: check-in/check-out dates are not applicable to long-term rentals", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: property has unknown rental term %q", ErrInvalidInput, term)
	}

	return nil
}
