package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено у организации
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
