package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CalendarDay календарная дата без времени суток.
// Хранится как полночь UTC, поэтому сравнение двух дней всегда идёт по нормализованному значению
type CalendarDay struct {
	t time.Time
}

// DayOf возвращает календарный день, на который приходится t (в его таймзоне)
func DayOf(t time.Time) CalendarDay {
	y, m, d := t.Date()
	return NewCalendarDay(y, m, d)
}

// NewCalendarDay создает день из года, месяца и числа
func NewCalendarDay(year int, month time.Month, day int) CalendarDay {
	return CalendarDay{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDay парсит дату формата YYYY-MM-DD
func ParseCalendarDay(s string) (CalendarDay, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDay{}, err
	}
	return DayOf(t), nil
}

// Time возвращает полночь UTC этого дня
func (d CalendarDay) Time() time.Time {
	return d.t
}

// Weekday день недели (0 - воскресенье)
func (d CalendarDay) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays сдвигает день на n дней
func (d CalendarDay) AddDays(n int) CalendarDay {
	return CalendarDay{t: d.t.AddDate(0, 0, n)}
}

func (d CalendarDay) Equal(other CalendarDay) bool {
	return d.t.Equal(other.t)
}

func (d CalendarDay) Before(other CalendarDay) bool {
	return d.t.Before(other.t)
}

func (d CalendarDay) IsZero() bool {
	return d.t.IsZero()
}

func (d CalendarDay) String() string {
	return d.t.Format(DateFormat)
}

// Value реализует driver.Valuer
func (d CalendarDay) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan реализует sql.Scanner (колонки DATE)
func (d *CalendarDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DayOf(v)
		return nil
	case string:
		day, err := ParseCalendarDay(v)
		if err != nil {
			return err
		}
		*d = day
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("calendar day: unsupported type %T", src)
	}
}

// MonthRange возвращает первый день месяца и первый день следующего месяца (полуинтервал)
func MonthRange(year int, month time.Month) (CalendarDay, CalendarDay) {
	first := NewCalendarDay(year, month, 1)
	return first, CalendarDay{t: first.t.AddDate(0, 1, 0)}
}
