package create_reservation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге организации или она отключена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrInvalidDate возвращается, когда дата или время уже прошли
	ErrInvalidDate = errors.New("create_reservation: date is in the past")

	// ErrSlotNotAvailable возвращается, когда слот занят, закрыт или не помещается в рабочее время
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
