package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RPM-BookingService/internal/domain"
)

func TestValidateTermFields_ShortTerm(t *testing.T) {
	option := domain.PaymentDepositOnly

	tests := []struct {
		name      string
		req       *Request
		wantField string
	}{
		{
			name:      "missing check-in",
			req:       &Request{CheckOut: datePtr(2026, time.September, 4)},
			wantField: "checkIn",
		},
		{
			name:      "missing check-out",
			req:       &Request{CheckIn: datePtr(2026, time.September, 1)},
			wantField: "checkOut",
		},
		{
			name: "check-out not after check-in",
			req: &Request{
				CheckIn:  datePtr(2026, time.September, 4),
				CheckOut: datePtr(2026, time.September, 4),
			},
			wantField: "checkOut must be after checkIn",
		},
		{
			name: "payment option not applicable",
			req: &Request{
				CheckIn:       datePtr(2026, time.September, 1),
				CheckOut:      datePtr(2026, time.September, 4),
				PaymentOption: &option,
			},
			wantField: "paymentOption",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTermFields(domain.TermShort, tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			// Текст ошибки называет отсутствующее поле
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}

	// Полный корректный запрос проходит
	err := validateTermFields(domain.TermShort, &Request{
		CheckIn:  datePtr(2026, time.September, 1),
		CheckOut: datePtr(2026, time.September, 4),
	})
	assert.NoError(t, err)
}

func TestValidateTermFields_LongTerm(t *testing.T) {
	option := domain.PaymentDepositOnly

	// Длительность обязательна
	err := validateTermFields(domain.TermLong, &Request{PaymentOption: &option})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "lease duration")

	// Опция оплаты обязательна
	err = validateTermFields(domain.TermLong, &Request{DurationMonths: 6})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "paymentOption")

	// Даты не применимы к долгосрочной аренде
	err = validateTermFields(domain.TermLong, &Request{
		DurationMonths: 6,
		PaymentOption:  &option,
		CheckIn:        datePtr(2026, time.September, 1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Превышение максимального срока аренды
	err = validateTermFields(domain.TermLong, &Request{
		DurationYears: domain.MaxLeaseYears + 1,
		PaymentOption: &option,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Корректный запрос
	err = validateTermFields(domain.TermLong, &Request{
		DurationMonths: 6,
		DurationYears:  1,
		PaymentOption:  &option,
	})
	assert.NoError(t, err)
}

func TestValidateRequest_NotesLength(t *testing.T) {
	longNotes := strings.Repeat("a", domain.MaxNotesLength+1)
	err := validateRequest(&Request{UserID: 1, PropertyID: 1, Notes: &longNotes})
	assert.ErrorIs(t, err, ErrInvalidInput)

	okNotes := strings.Repeat("a", domain.MaxNotesLength)
	err = validateRequest(&Request{UserID: 1, PropertyID: 1, Notes: &okNotes})
	assert.NoError(t, err)
}

func TestParseBlockedDates(t *testing.T) {
	dates := parseBlockedDates([]string{"2026-09-11", "not-a-date", "2026-09-12"})

	// Некорректные значения пропускаются
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestFindBlockedNight(t *testing.T) {
	blocked := parseBlockedDates([]string{"2026-09-11"})

	// Заблокированная ночь внутри интервала
	night := findBlockedNight(blocked,
		time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, night)
	assert.Equal(t, "2026-09-11", night.Format(domain.DateFormat))

	// Интервал [checkIn, checkOut) не включает дату выезда
	night = findBlockedNight(blocked,
		time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, night)
}

func TestIsDateBlocked_DayNormalization(t *testing.T) {
	blocked := parseBlockedDates([]string{"2026-09-11"})

	// Время суток не влияет на сравнение
	assert.True(t, isDateBlocked(blocked, time.Date(2026, time.September, 11, 23, 45, 0, 0, time.UTC)))
	assert.False(t, isDateBlocked(blocked, time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)))
}
