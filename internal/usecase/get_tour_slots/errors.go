package get_tour_slots

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("get_tour_slots: property not found")

	// ErrToursNotOffered возвращается, когда объект не предлагает туры
	ErrToursNotOffered = errors.New("get_tour_slots: property does not offer tours")

	// ErrInvalidDate возвращается при некорректной дате тура
	ErrInvalidDate = errors.New("get_tour_slots: invalid tour date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_tour_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_tour_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_tour_slots: internal error")
)
