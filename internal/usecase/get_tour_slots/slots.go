package get_tour_slots

import (
	"strings"
	"time"

	"github.com/m04kA/RPM-BookingService/internal/domain"
	"github.com/m04kA/RPM-BookingService/internal/integrations/propertyservice"
	"github.com/m04kA/RPM-BookingService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день.
// Слоты генерируются с начала окна показов с фиксированным шагом slotDuration,
// затем фильтруются с учетом текущего времени и минимального времени до записи
func generateTimeSlots(
	availability *propertyservice.TourAvailability,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
	minNoticeMinutes int,
) ([]types.TimeString, error) {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Туры недоступны в этот день недели или дата закрыта владельцем
	if !isAvailableWeekday(availability, requestDate) || isTourDateBlocked(availability, requestDate) {
		return []types.TimeString{}, nil
	}

	// Парсим границы окна показов
	windowStart, err := types.NewTimeStringFromString(availability.StartTime)
	if err != nil {
		return nil, err
	}

	windowEnd, err := types.NewTimeStringFromString(availability.EndTime)
	if err != nil {
		return nil, err
	}

	// Шаг 1: Генерируем ВСЕ слоты от начала окна до конца с фиксированным шагом.
	// Конец кандидата за пределами суток или за концом окна означает конец сетки
	allSlots := make([]types.TimeString, 0)
	currentSlot := windowStart

	for currentSlot.IsBefore(windowEnd) {
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil || slotEnd.IsAfter(windowEnd) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot = slotEnd
	}

	// Шаг 2: Если дата тура НЕ сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Если дата тура - сегодня, фильтруем слоты по времени.
	// Вычисляем минимальное допустимое время начала слота
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		// Минимальное время вышло за пределы суток - на сегодня слотов нет
		return []types.TimeString{}, nil
	}

	// Фильтруем слоты - оставляем только те, которые начинаются не раньше minAllowedTime
	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// calculateAvailableSpots вычисляет количество свободных мест для каждого слота
func calculateAvailableSpots(
	slots []types.TimeString,
	slotDuration int,
	tours []*domain.Tour,
	maxConcurrentTours int,
) []domain.TourSlot {
	result := make([]domain.TourSlot, len(slots))

	for i, slotStart := range slots {
		// Подсчитываем количество туров, пересекающихся с этим слотом
		overlappingCount := countOverlappingTours(slotStart, slotDuration, tours)

		availableSpots := maxConcurrentTours - overlappingCount
		if availableSpots < 0 {
			availableSpots = 0
		}

		result[i] = domain.TourSlot{
			StartTime:       slotStart,
			DurationMinutes: slotDuration,
			AvailableSpots:  availableSpots,
			TotalSpots:      maxConcurrentTours,
		}
	}

	return result
}

// countOverlappingTours подсчитывает количество туров, пересекающихся с указанным слотом.
// Пересечение есть только если интервалы действительно накладываются друг на друга.
// Если один тур заканчивается ровно там, где начинается слот (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Слот 11:30-12:00, тур 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, тур 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, тур 12:00-12:30 → НЕТ пересечения (граничат)
func countOverlappingTours(slotStart types.TimeString, slotDuration int, tours []*domain.Tour) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		// Конец слота за пределами суток - сетка такие слоты не порождает,
		// пересечений нет
		return 0
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
			// Конец тура за пределами суток - пропускаем, как и слоты
			// с таким концом при генерации сетки
			continue
		}

		// Проверяем РЕАЛЬНОЕ пересечение временных интервалов.
		// Интервалы пересекаются, только если:
		// - начало тура СТРОГО раньше конца слота И
		// - конец тура СТРОГО позже начала слота
		//
		// Используем строгие неравенства (IsBefore, IsAfter), чтобы граничные случаи не считались пересечением
		if tourStart.IsBefore(slotEnd) && tourEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
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
