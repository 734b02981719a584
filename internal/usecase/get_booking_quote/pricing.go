package get_booking_quote

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// calculateTotalPrice вычисляет полную стоимость бронирования.
//
// short_term: (количество ночей) * цена за ночь. Если даты не выбраны или
// checkOut не позже checkIn - стоимость 0 (неполный выбор, не ошибка).
//
// long_term: (месяцы + годы*12) * цена за месяц. Нулевая длительность даёт 0.
func calculateTotalPrice(
	term domain.RentalTerm,
	unitPrice int64,
	checkIn, checkOut *time.Time,
	durationMonths, durationYears int,
) int64 {
	switch term {
	case domain.TermShort:
		return int64(domain.NightsBetween(checkIn, checkOut)) * unitPrice
	case domain.TermLong:
		return int64(durationMonths+durationYears*12) * unitPrice
	default:
		return 0
	}
}

// calculateDepositAmount вычисляет размер залога.
// Залог равен одной единице аренды (месячной ставке) и применяется только к long_term.
func calculateDepositAmount(term domain.RentalTerm, unitPrice int64) int64 {
	if term == domain.TermLong {
		return unitPrice
	}
	return 0
}

// calculateDueToday вычисляет сумму к оплате при бронировании.
//
// short_term: полная стоимость проживания.
// long_term deposit_only: только залог (одна месячная ставка), независимо от длительности.
// long_term full_payment: залог + первый месяц = 2 месячные ставки.
func calculateDueToday(
	term domain.RentalTerm,
	unitPrice int64,
	option domain.PaymentOption,
	totalPrice int64,
) int64 {
	if term == domain.TermShort {
		return totalPrice
	}

	switch option {
	case domain.PaymentFull:
		return 2 * unitPrice
	default:
		// deposit_only
		return unitPrice
	}
}
