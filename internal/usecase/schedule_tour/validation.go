package schedule_tour

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата подходит для записи на тур
func validateDate(tourDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(tourDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает ограничение advanceBookingDays
	maxDate := domain.DayStart(now).AddDate(0, 0, advanceBookingDays)

	if domain.DayStart(tourDate).After(maxDate) {
		return fmt.Errorf("%w: can only schedule %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateDateAvailable проверяет, что туры доступны в выбранную дату:
// день недели входит в шаблон и дата не закрыта владельцем
func validateDateAvailable(availability *propertyservice.TourAvailability, date time.Time) error {
	if !isAvailableWeekday(availability, date) {
		return ErrDateNotAvailable
	}
	if isTourDateBlocked(availability, date) {
		return ErrDateNotAvailable
	}
	return nil
}

// validateSlotAlignment проверяет, что время начала совпадает с сеткой слотов:
// начинается на границе шага от начала окна и целиком помещается в окно
func validateSlotAlignment(
	availability *propertyservice.TourAvailability,
	startTime types.TimeString,
	slotDuration int,
) error {
	windowStart, err := types.NewTimeStringFromString(availability.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid availability start time: %v", ErrInternal, err)
	}

	windowEnd, err := types.NewTimeStringFromString(availability.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid availability end time: %v", ErrInternal, err)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	windowStartMinutes, err := windowStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid availability start time: %v", ErrInternal, err)
	}

	// Слот должен начинаться на границе шага от начала окна
	if startMinutes < windowStartMinutes || (startMinutes-windowStartMinutes)%slotDuration != 0 {
		return ErrInvalidTimeSlot
	}

	// Слот должен целиком помещаться в окно показов
	slotEnd, err := startTime.AddMinutes(slotDuration)
	if err != nil {
		return ErrInvalidTimeSlot
	}
	if slotEnd.IsAfter(windowEnd) {
		return ErrInvalidTimeSlot
	}

	return nil
}

// validateTourTime проверяет, что запись не нарушает minNoticeMinutes
func validateTourTime(
	tourDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	// Если дата тура не сегодня, проверка не нужна
	if !isSameDay(tourDate, now) {
		return nil
	}

	// Вычисляем минимальное допустимое время
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		// Минимальное время вышло за пределы суток - сегодня записаться уже нельзя
		return fmt.Errorf("%w: must schedule at least %d minutes in advance", ErrTooLateToSchedule, minNoticeMinutes)
	}

	// Проверяем, что время начала не раньше минимального
	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must schedule at least %d minutes in advance", ErrTooLateToSchedule, minNoticeMinutes)
	}

	return nil
}

// countOverlappingTours подсчитывает количество активных туров на указанный слот
func countOverlappingTours(
	startTime types.TimeString,
	slotDuration int,
	tours []*domain.Tour,
) (int, error) {
	slotEnd, err := startTime.AddMinutes(slotDuration)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, tour := range tours {
		// Пропускаем отменённые туры
		if !tour.IsActive() {
			continue
		}

		tourStart := tour.StartTime
		tourEnd, err := tour.StartTime.AddMinutes(tour.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец тура, пропускаем
			continue
		}

		// Проверяем пересечение (строгие неравенства, граничные случаи не считаются)
		if tourStart.IsBefore(slotEnd) && tourEnd.IsAfter(startTime) {
			count++
		}
	}

	return count, nil
}

// isAvailableWeekday проверяет, что день недели входит в шаблон доступности объекта
func isAvailableWeekday(availability *propertyservice.TourAvailability, date time.Time) bool {
	weekday := strings.ToLower(date.Weekday().String())
	for _, day := range availability.AvailableDays {
		if strings.ToLower(day) == weekday {
			return true
		}
	}
	return false
}

// isTourDateBlocked проверяет, закрыта ли дата для туров владельцем объекта
func isTourDateBlocked(availability *propertyservice.TourAvailability, date time.Time) bool {
	day := date.Format(domain.DateFormat)
	for _, blocked := range availability.BlockedDates {
		if blocked == day {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	return domain.DayStart(date).Before(domain.DayStart(now))
}
