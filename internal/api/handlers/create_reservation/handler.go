package create_reservation

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
	createReservation "github.com/Celia92000/laia-skin-nextjs-sub023/internal/usecase/create_reservation"
)

const (
	msgMissingTenant      = "организация не указана"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDateInPast         = "выбранное время уже прошло"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: tenant=%s, date=%s, time=%s", tenantID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: tenant=%s, services=%v", tenantID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in the past: tenant=%s, date=%s, time=%s", tenantID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: tenant=%s, %v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, availability.ErrDependency):
			h.logger.Error("POST /reservations - Storage unavailable: tenant=%s, error=%v", tenantID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: tenant=%s, date=%s, time=%s, error=%v",
				tenantID, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, tenant=%s, date=%s, time=%s",
		result.Reservation.ID, tenantID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
