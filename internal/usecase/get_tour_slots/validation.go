package get_tour_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для записи на тур
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает ограничение advanceBookingDays
	maxDate := domain.DayStart(now).AddDate(0, 0, advanceBookingDays)

	if domain.DayStart(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only schedule %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
