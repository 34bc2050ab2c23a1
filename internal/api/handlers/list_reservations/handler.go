package list_reservations

import (
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
)

const (
	msgMissingTenant = "организация не указана"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/reservations?date=YYYY-MM-DD
// Расписание дня для администратора: только бронирования, занимающие время
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	day, err := availability.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid date: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListActiveByDate(r.Context(), tenantID, day)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: tenant=%s, date=%s, error=%v", tenantID, day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - tenant=%s, date=%s, count=%d", tenantID, day, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
