package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/userservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

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

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTermFields проверяет обязательные поля в зависимости от типа аренды.
// В отличие от расчёта стоимости, при оформлении бронирования
// неполный выбор - это ошибка с указанием отсутствующего поля.
func validateTermFields(term domain.RentalTerm, req *Request) error {
	switch term {
	case domain.TermShort:
		if req.CheckIn == nil {
			return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
		}
		if req.CheckOut == nil {
			return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
		}
		if domain.NightsBetween(req.CheckIn, req.CheckOut) <= 0 {
			return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
		}
		if domain.NightsBetween(req.CheckIn, req.CheckOut) > domain.MaxStayNights {
			return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
		}
		if req.PaymentOption != nil {
			return fmt.Errorf("%w: paymentOption is not applicable to short-term rentals", ErrInvalidInput)
		}
	case domain.TermLong:
		if req.CheckIn != nil || req.CheckOut != nil {
			return fmt.Errorf("%w: check-in/check-out dates are not applicable to long-term rentals", ErrInvalidInput)
		}
		if req.DurationMonths+req.DurationYears*12 <= 0 {
			return fmt.Errorf("%w: lease duration is required", ErrInvalidInput)
		}
		if req.DurationMonths+req.DurationYears*12 > domain.MaxLeaseYears*12 {
			return fmt.Errorf("%w: lease must not exceed %d years", ErrInvalidInput, domain.MaxLeaseYears)
		}
		if req.PaymentOption == nil {
			return fmt.Errorf("%w: paymentOption is required", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: property has unknown rental term %q", ErrInvalidInput, term)
	}

	return nil
}

// validateCustomerProfile проверяет, что профиль пользователя содержит
// обязательные контактные данные для бронирования
func validateCustomerProfile(user *userservice.User) error {
	if user.Name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if user.Phone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	return nil
}

// validateCheckInNotInPast проверяет, что дата заезда не в прошлом
func validateCheckInNotInPast(checkIn time.Time, now time.Time) error {
	if domain.DayStart(checkIn).Before(domain.DayStart(now)) {
		return ErrInvalidDate
	}
	return nil
}

// parseBlockedDates конвертирует даты из модели PropertyService (YYYY-MM-DD)
// в нормализованные отметки начала дня. Некорректные значения пропускаются.
func parseBlockedDates(raw []string) []time.Time {
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			continue
		}
		dates = append(dates, domain.DayStart(d))
	}
	return dates
}

// isDateBlocked проверяет, входит ли дата в список заблокированных.
// Сравнение по началу календарного дня: время суток не влияет на результат.
func isDateBlocked(blockedDates []time.Time, date time.Time) bool {
	day := domain.DayStart(date)
	for _, blocked := range blockedDates {
		if blocked.Equal(day) {
			return true
		}
	}
	return false
}

// findBlockedNight возвращает первую заблокированную ночь в интервале
// [checkIn, checkOut) или nil, если все ночи свободны
func findBlockedNight(blockedDates []time.Time, checkIn, checkOut time.Time) *time.Time {
	for night := domain.DayStart(checkIn); night.Before(domain.DayStart(checkOut)); night = night.AddDate(0, 0, 1) {
		if isDateBlocked(blockedDates, night) {
			blocked := night
			return &blocked
		}
	}
	return nil
}
