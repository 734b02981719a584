package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных;
	// текст ошибки называет проблемное поле
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrIncompleteSelection возвращается при попытке оформить бронирование
	// с нулевой итоговой стоимостью (выбор дат/длительности не завершён)
	ErrIncompleteSelection = errors.New("create_booking: booking selection is incomplete")

	// ErrInvalidDate возвращается при дате заезда в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDatesBlocked возвращается, когда выбранный период содержит
	// заблокированную владельцем дату
	ErrDatesBlocked = errors.New("create_booking: requested dates are blocked")

	// ErrDatesNotAvailable возвращается, когда выбранные даты уже заняты
	// другим бронированием (обнаруживается при повторной проверке в транзакции)
	ErrDatesNotAvailable = errors.New("create_booking: requested dates are not available")

	// ErrPropertyNotAvailable возвращается, когда объект уже сдан в долгосрочную аренду
	ErrPropertyNotAvailable = errors.New("create_booking: property is not available for lease")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
