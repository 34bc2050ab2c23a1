package get_blocked_dates

import (
	"context"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

type AvailabilityService interface {
	GetBlockedDatesForMonth(ctx context.Context, tenantID domain.TenantID, year int, month time.Month) ([]domain.CalendarDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
