package schedule_tour

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("schedule_tour: property not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("schedule_tour: user not found")

	// ErrToursNotOffered возвращается, когда объект не предлагает туры
	ErrToursNotOffered = errors.New("schedule_tour: property does not offer tours")

	// ErrInvalidDate возвращается при некорректной дате тура
	ErrInvalidDate = errors.New("schedule_tour: invalid tour date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("schedule_tour: date is too far in the future")

	// ErrDateNotAvailable возвращается, когда туры недоступны в выбранную дату
	// (день недели вне шаблона или дата закрыта владельцем)
	ErrDateNotAvailable = errors.New("schedule_tour: tours are not available on this date")

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает
	// с сеткой слотов объекта
	ErrInvalidTimeSlot = errors.New("schedule_tour: start time does not match the slot grid")

	// ErrTooLateToSchedule возвращается при нарушении минимального времени до тура
	ErrTooLateToSchedule = errors.New("schedule_tour: too late to schedule this slot")

	// ErrSlotNotAvailable возвращается, когда в выбранном слоте нет свободных мест
	// (обнаруживается при повторной проверке в транзакции)
	ErrSlotNotAvailable = errors.New("schedule_tour: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_tour: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_tour: internal error")
)
