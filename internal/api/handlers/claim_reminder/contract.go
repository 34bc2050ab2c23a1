package claim_reminder

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

type ReminderLedger interface {
	Claim(ctx context.Context, tenantID domain.TenantID, entityID int64, kind domain.ReminderKind) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
