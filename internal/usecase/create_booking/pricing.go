package create_booking

import (
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

// calculateTotalPrice вычисляет полную стоимость бронирования.
// Та же арифметика, что и в usecase расчёта стоимости: цена, показанная
// клиенту в квоте, обязана совпасть с ценой в созданном бронировании.
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

// calculateDepositAmount вычисляет размер залога (одна месячная ставка, только long_term)
func calculateDepositAmount(term domain.RentalTerm, unitPrice int64) int64 {
	if term == domain.TermLong {
		return unitPrice
	}
	return 0
}

// calculateDueToday вычисляет сумму к оплате при бронировании
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
