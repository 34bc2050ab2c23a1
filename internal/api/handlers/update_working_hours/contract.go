package update_working_hours

import (
	"context"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar/models"
)

type CalendarService interface {
	SetWorkingHours(ctx context.Context, tenantID domain.TenantID, weekday time.Weekday, req *models.SetWorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
