package delete_blocked_slot

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

type CalendarService interface {
	DeleteBlockedSlot(ctx context.Context, tenantID domain.TenantID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
