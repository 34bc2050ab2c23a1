package availability

import (
	"context"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// WorkingHoursReader чтение часов работы одной организации
type WorkingHoursReader interface {
	// GetByWeekday возвращает workinghours.ErrWorkingHoursNotFound, если день не настроен
	GetByWeekday(ctx context.Context, weekday time.Weekday) (*domain.WorkingHours, error)
}

// BlockedSlotReader чтение блокировок календаря одной организации
type BlockedSlotReader interface {
	GetByDate(ctx context.Context, day domain.CalendarDay) (*domain.DayBlocks, error)
	// GetAllDayDates даты с блокировкой на весь день в полуинтервале [from, to)
	GetAllDayDates(ctx context.Context, from, to domain.CalendarDay) ([]domain.CalendarDay, error)
}

// ReservationReader чтение бронирований одной организации
type ReservationReader interface {
	// GetActiveByDate бронирования в статусах pending/confirmed вместе с их услугами
	GetActiveByDate(ctx context.Context, day domain.CalendarDay) ([]*domain.Reservation, error)
}

// Store набор читателей, уже привязанных к организации
type Store struct {
	WorkingHours WorkingHoursReader
	BlockedSlots BlockedSlotReader
	Reservations ReservationReader
}

// StoreFactory привязывает хранилища к организации.
// Движок не получает идентификатор организации в методах, поэтому не может прочитать чужие данные
type StoreFactory func(tenantID domain.TenantID) Store

// MetricsRecorder учёт вызовов движка (pkg/metrics)
type MetricsRecorder interface {
	ObserveComputation(operation string, err error, availableSlots int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
