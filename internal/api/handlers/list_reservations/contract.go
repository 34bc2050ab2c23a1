package list_reservations

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations/models"
)

type ReservationService interface {
	ListActiveByDate(ctx context.Context, tenantID domain.TenantID, day domain.CalendarDay) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
