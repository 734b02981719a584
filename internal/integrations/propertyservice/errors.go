package propertyservice

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("propertyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("propertyservice client: invalid response")
)
