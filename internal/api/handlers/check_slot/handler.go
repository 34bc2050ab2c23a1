package check_slot

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
)

const (
	msgMissingTenant   = "организация не указана"
	msgMissingParams   = "дата и время обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
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

// Handle GET /api/v1/availability/check
// Query params: date (required), time (required, HH:MM), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	query := r.URL.Query()
	dateStr, timeStr := query.Get("date"), query.Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /availability/check - Missing date or time: tenant=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	day, err := availability.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid date: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	at, err := availability.ParseTime(timeStr)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid time: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := handlers.QueryOptionalInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid duration: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	available, err := h.service.IsSlotAvailable(r.Context(), tenantID, day, at, duration)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/check - Invalid input: tenant=%s, date=%s, time=%s, %v", tenantID, day, at, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, availability.ErrDependency):
			h.logger.Error("GET /availability/check - Storage unavailable: tenant=%s, date=%s, error=%v", tenantID, day, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /availability/check - Failed to check slot: tenant=%s, date=%s, time=%s, error=%v",
				tenantID, day, at, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/check - tenant=%s, date=%s, time=%s, available=%t", tenantID, day, at, available)
	handlers.RespondJSON(w, http.StatusOK, &SlotCheckResponse{
		Date:            day.String(),
		Time:            at.String(),
		DurationMinutes: duration,
		Available:       available,
	})
}
