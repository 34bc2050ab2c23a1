package get_working_hours

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar/models"
)

type CalendarService interface {
	GetWeek(ctx context.Context, tenantID domain.TenantID) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
