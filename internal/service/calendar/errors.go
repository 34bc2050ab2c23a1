package calendar

import "errors"

var (
	// ErrBlockedSlotNotFound возвращается, когда блокировка не найдена у организации
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
