package get_booking_quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCalculateTotalPrice_ShortTerm(t *testing.T) {
	// 3 ночи по 100
	total := calculateTotalPrice(domain.TermShort, 100,
		datePtr(2026, time.September, 1), datePtr(2026, time.September, 4), 0, 0)
	assert.Equal(t, int64(300), total)

	// Неполный выбор дат - стоимость 0, не ошибка
	total = calculateTotalPrice(domain.TermShort, 100, nil, nil, 0, 0)
	assert.Equal(t, int64(0), total)

	total = calculateTotalPrice(domain.TermShort, 100,
		datePtr(2026, time.September, 1), nil, 0, 0)
	assert.Equal(t, int64(0), total)

	// checkOut не позже checkIn - стоимость 0
	total = calculateTotalPrice(domain.TermShort, 100,
		datePtr(2026, time.September, 4), datePtr(2026, time.September, 4), 0, 0)
	assert.Equal(t, int64(0), total)
}

func TestCalculateTotalPrice_LongTerm(t *testing.T) {
	// 6 месяцев по 1000
	total := calculateTotalPrice(domain.TermLong, 1000, nil, nil, 6, 0)
	assert.Equal(t, int64(6000), total)

	// 2 года = 24 месяца
	total = calculateTotalPrice(domain.TermLong, 1000, nil, nil, 0, 2)
	assert.Equal(t, int64(24000), total)

	// Годы и месяцы суммируются: 1 год 6 месяцев = 18 месяцев
	total = calculateTotalPrice(domain.TermLong, 1000, nil, nil, 6, 1)
	assert.Equal(t, int64(18000), total)

	// Нулевая длительность - стоимость 0
	total = calculateTotalPrice(domain.TermLong, 1000, nil, nil, 0, 0)
	assert.Equal(t, int64(0), total)
}

func TestCalculateDepositAmount(t *testing.T) {
	// Залог равен одной месячной ставке и применяется только к long_term
	assert.Equal(t, int64(1000), calculateDepositAmount(domain.TermLong, 1000))
	assert.Equal(t, int64(0), calculateDepositAmount(domain.TermShort, 100))
}

func TestCalculateDueToday(t *testing.T) {
	// short_term: вся стоимость проживания сразу
	due := calculateDueToday(domain.TermShort, 100, "", 300)
	assert.Equal(t, int64(300), due)

	// long_term deposit_only: одна ставка, независимо от длительности аренды
	due = calculateDueToday(domain.TermLong, 1000, domain.PaymentDepositOnly, 24000)
	assert.Equal(t, int64(1000), due)

	// long_term full_payment: залог + первый месяц
	due = calculateDueToday(domain.TermLong, 1000, domain.PaymentFull, 24000)
	assert.Equal(t, int64(2000), due)
}
