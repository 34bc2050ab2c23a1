package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations/models"
)

const (
	msgMissingTenant        = "организация не указана"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронирование не найдено"
	msgCannotCancel         = "бронирование не может быть отменено"
	msgReasonTooLong        = "причина отмены слишком длинная"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// Тело необязательно: {"cancellationReason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.CancelReservationRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	err = h.service.Cancel(r.Context(), tenantID, reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%d, tenant=%s",
				reservationID, tenantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid input: reservation_id=%d, %v", reservationID, err)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled successfully: reservation_id=%d, tenant=%s",
		reservationID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
