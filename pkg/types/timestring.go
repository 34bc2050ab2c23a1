package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour

	// EndOfDay конец суток, допустим только как время закрытия
	EndOfDay TimeString = "24:00"
)

var (
	// ErrInvalidTimeFormat возвращается, если строка не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, если время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of day range")
)

// TimeString время суток в формате "HH:MM" (настенные часы, без даты и таймзоны)
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM" в пределах 00:00-23:59
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := parseMinutes(s, false); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// NewEndTimeStringFromString как NewTimeStringFromString, но допускает "24:00"
func NewEndTimeStringFromString(s string) (TimeString, error) {
	if _, err := parseMinutes(s, true); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// Minutes возвращает количество минут от полуночи. "24:00" - это 1440
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t), true)
}

// AddMinutes возвращает время, сдвинутое на n минут. Переход через полночь - ошибка
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := parseMinutes(string(t), false)
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + n)
}

// Compare возвращает -1, 0 или 1. Некорректное значение с любой стороны - ошибка
func (t TimeString) Compare(other TimeString) (int, error) {
	a, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	b, err := other.Minutes()
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// IsBefore true, если t раньше other
func (t TimeString) IsBefore(other TimeString) (bool, error) {
	c, err := t.Compare(other)
	return c < 0, err
}

// IsAfter true, если t позже other
func (t TimeString) IsAfter(other TimeString) (bool, error) {
	c, err := t.Compare(other)
	return c > 0, err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат и диапазон 00:00-23:59
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t), false)
	return err
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if _, err := t.Minutes(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner. Postgres TIME приходит как "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}

	// Отбрасываем секунды
	if len(raw) > 5 && raw[5] == ':' {
		raw = raw[:5]
	}

	parsed, err := NewEndTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// parseMinutes разбирает строго "HH:MM": ровно две цифры, двоеточие, две цифры.
// endOfDay разрешает "24:00"
func parseMinutes(s string, endOfDay bool) (int, error) {
	if len(s) != 5 || s[2] != ':' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')

	if endOfDay && hours == 24 && minutes == 0 {
		return minutesPerDay, nil
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return hours*minutesPerHour + minutes, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
