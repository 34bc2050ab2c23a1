package reservations

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// ReservationRepository репозиторий бронирований одной организации
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetActiveByDate(ctx context.Context, day domain.CalendarDay) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason *string) error
}

// RepositoryFactory привязывает репозиторий к организации
type RepositoryFactory func(tenantID domain.TenantID) ReservationRepository

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
