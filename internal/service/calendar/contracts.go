package calendar

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// WorkingHoursRepository часы работы одной организации
type WorkingHoursRepository interface {
	GetAll(ctx context.Context) ([]*domain.WorkingHours, error)
	Upsert(ctx context.Context, hours *domain.WorkingHours) (*domain.WorkingHours, error)
}

// BlockedSlotRepository блокировки одной организации
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories репозитории, привязанные к организации
type Repositories struct {
	WorkingHours WorkingHoursRepository
	BlockedSlots BlockedSlotRepository
}

// RepositoryFactory привязывает репозитории к организации
type RepositoryFactory func(tenantID domain.TenantID) Repositories

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
