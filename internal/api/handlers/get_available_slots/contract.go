package get_available_slots

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, tenantID domain.TenantID, day domain.CalendarDay, durationMinutes *int) ([]domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
