package create_reservation

import (
	"context"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// ReservationRepository запись бронирований одной организации
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// ServiceCatalog каталог услуг одной организации
type ServiceCatalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.CatalogService, error)
}

// SlotChecker проверка слота движком доступности (*availability.Engine)
type SlotChecker interface {
	IsSlotAvailable(ctx context.Context, day domain.CalendarDay, at types.TimeString, durationMinutes *int) (bool, error)
}

// Dependencies зависимости, привязанные к одной организации
type Dependencies struct {
	Reservations ReservationRepository
	Catalog      ServiceCatalog
	Availability SlotChecker
}

// DependencyFactory привязывает зависимости к организации
type DependencyFactory func(tenantID domain.TenantID) Dependencies

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
