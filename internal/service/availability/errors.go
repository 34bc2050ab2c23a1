package availability

import "errors"

var (
	// ErrInvalidInput некорректная дата, время или длительность от вызывающей стороны
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrConfiguration некорректные часы работы или блокировки (например, "9h00" или конец раньше начала)
	ErrConfiguration = errors.New("availability: invalid calendar configuration")

	// ErrDependency ошибка чтения из хранилища. Повторы - ответственность вызывающей стороны
	ErrDependency = errors.New("availability: dependency failure")
)
