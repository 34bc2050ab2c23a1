package check_slot

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

type AvailabilityService interface {
	IsSlotAvailable(ctx context.Context, tenantID domain.TenantID, day domain.CalendarDay, at types.TimeString, durationMinutes *int) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
