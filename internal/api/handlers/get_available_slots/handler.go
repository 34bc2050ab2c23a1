package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
)

const (
	msgMissingTenant   = "организация не указана"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность услуги"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date: tenant=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	day, err := availability.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := handlers.QueryOptionalInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid duration: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	slots, err := h.service.GetAvailableSlots(r.Context(), tenantID, day, duration)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: tenant=%s, date=%s, %v", tenantID, day, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, availability.ErrDependency):
			h.logger.Error("GET /availability/slots - Storage unavailable: tenant=%s, date=%s, error=%v", tenantID, day, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: tenant=%s, date=%s, error=%v", tenantID, day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved successfully: tenant=%s, date=%s, slots_count=%d",
		tenantID, day, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(day, duration, slots))
}
