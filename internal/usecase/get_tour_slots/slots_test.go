package get_tour_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// 2026-09-07 - понедельник
var (
	testDate = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
)

func weekdayAvailability() *propertyservice.TourAvailability {
	return &propertyservice.TourAvailability{
		AvailableDays:       []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:           "10:00",
		EndTime:             "12:00",
		TourDurationMinutes: 30,
	}
}

func activeTour(start types.TimeString, duration int) *domain.Tour {
	return &domain.Tour{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestGenerateTimeSlots_FullWindow(t *testing.T) {
	slots, err := generateTimeSlots(weekdayAvailability(), 30, testDate, testNow, 60)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGenerateTimeSlots_SlotMustFitInWindow(t *testing.T) {
	// Окно 10:00-12:00, шаг 45 минут: последний полный слот 10:45-11:30,
	// слот 11:30-12:15 выходит за окно
	slots, err := generateTimeSlots(weekdayAvailability(), 45, testDate, testNow, 60)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:45"}, slots)
}

func TestGenerateTimeSlots_WindowNearMidnight(t *testing.T) {
	// Окно 22:00-23:59, шаг 45 минут: кандидат 23:30 закончился бы в 24:15,
	// за пределами суток - сетка просто заканчивается на 22:45
	availability := weekdayAvailability()
	availability.StartTime = "22:00"
	availability.EndTime = "23:59"

	slots, err := generateTimeSlots(availability, 45, testDate, testNow, 60)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"22:00", "22:45"}, slots)
}

func TestGenerateTimeSlots_UnavailableWeekday(t *testing.T) {
	// 2026-09-06 - воскресенье
	sunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(weekdayAvailability(), 30, sunday, testNow, 60)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_BlockedDate(t *testing.T) {
	availability := weekdayAvailability()
	availability.BlockedDates = []string{"2026-09-07"}

	slots, err := generateTimeSlots(availability, 30, testDate, testNow, 60)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	past := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(weekdayAvailability(), 30, past, testNow, 60)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayFiltersByMinNotice(t *testing.T) {
	// Запрос на сегодня в 10:10 при minNotice=60: доступны только слоты с 11:10,
	// то есть 11:30
	now := time.Date(2026, time.September, 7, 10, 10, 0, 0, time.UTC)

	slots, err := generateTimeSlots(weekdayAvailability(), 30, testDate, now, 60)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"11:30"}, slots)
}

func TestGenerateTimeSlots_TodayNoticePastMidnight(t *testing.T) {
	// Минимальное допустимое время выходит за пределы суток -
	// на сегодня слотов не остаётся
	now := time.Date(2026, time.September, 7, 23, 30, 0, 0, time.UTC)

	slots, err := generateTimeSlots(weekdayAvailability(), 30, testDate, now, 60)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCountOverlappingTours_StrictOverlap(t *testing.T) {
	tests := []struct {
		name     string
		tour     *domain.Tour
		expected int
	}{
		{
			name:     "real overlap counts",
			tour:     activeTour("11:20", 20), // 11:20-11:40 пересекает 11:30-12:00
			expected: 1,
		},
		{
			name:     "tour ending at slot start does not conflict",
			tour:     activeTour("11:00", 30), // 11:00-11:30 граничит со слотом
			expected: 0,
		},
		{
			name:     "tour starting at slot end does not conflict",
			tour:     activeTour("12:00", 30), // 12:00-12:30 граничит со слотом
			expected: 0,
		},
		{
			name:     "tour fully inside the slot counts",
			tour:     activeTour("11:40", 10),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := countOverlappingTours("11:30", 30, []*domain.Tour{tt.tour})
			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestCountOverlappingTours_TourPastMidnightSkipped(t *testing.T) {
	// Тур с концом за пределами суток пропускается так же,
	// как такие слоты пропускаются при генерации сетки
	tours := []*domain.Tour{
		activeTour("23:45", 30),
		activeTour("11:30", 30),
	}

	count := countOverlappingTours("11:30", 30, tours)
	assert.Equal(t, 1, count)
}

func TestCountOverlappingTours_CancelledToursDoNotCount(t *testing.T) {
	cancelled := activeTour("11:30", 30)
	cancelled.Status = domain.StatusCancelledByUser

	count := countOverlappingTours("11:30", 30, []*domain.Tour{cancelled})
	assert.Equal(t, 0, count)
}

func TestCalculateAvailableSpots(t *testing.T) {
	slots := []types.TimeString{"10:00", "10:30", "11:00"}
	tours := []*domain.Tour{
		activeTour("10:00", 30),
		activeTour("10:00", 30),
	}

	result := calculateAvailableSpots(slots, 30, tours, 2)

	require.Len(t, result, 3)
	// Слот 10:00 занят полностью
	assert.Equal(t, 0, result[0].AvailableSpots)
	assert.Equal(t, 2, result[0].TotalSpots)
	// Остальные свободны
	assert.Equal(t, 2, result[1].AvailableSpots)
	assert.Equal(t, 2, result[2].AvailableSpots)
}

func TestCalculateAvailableSpots_NeverNegative(t *testing.T) {
	slots := []types.TimeString{"10:00"}
	tours := []*domain.Tour{
		activeTour("10:00", 30),
		activeTour("10:00", 30),
		activeTour("10:00", 30),
	}

	result := calculateAvailableSpots(slots, 30, tours, 1)

	require.Len(t, result, 1)
	assert.Equal(t, 0, result[0].AvailableSpots)
}

func TestCalculateAvailableSpots_CancellationFreesSpot(t *testing.T) {
	// Отмена тура не уменьшает доступность: занятость считается
	// только по активным турам
	slots := []types.TimeString{"10:00"}

	booked := []*domain.Tour{activeTour("10:00", 30)}
	before := calculateAvailableSpots(slots, 30, booked, 1)
	require.Equal(t, 0, before[0].AvailableSpots)

	booked[0].Status = domain.StatusCancelledByProperty
	after := calculateAvailableSpots(slots, 30, booked, 1)
	assert.Equal(t, 1, after[0].AvailableSpots)
}
