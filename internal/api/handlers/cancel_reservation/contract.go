package cancel_reservation

import (
	"context"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, tenantID domain.TenantID, id int64, req *models.CancelReservationRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
