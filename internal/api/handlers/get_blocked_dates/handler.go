package get_blocked_dates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
)

const (
	msgMissingTenant = "организация не указана"
	msgInvalidYear   = "некорректный год"
	msgInvalidMonth  = "некорректный месяц, ожидается 1-12"
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

// Handle GET /api/v1/availability/blocked-dates
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability/blocked-dates - Invalid year: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /availability/blocked-dates - Invalid month: tenant=%s, %v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	dates, err := h.service.GetBlockedDatesForMonth(r.Context(), tenantID, year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/blocked-dates - Invalid input: tenant=%s, %v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, availability.ErrDependency):
			h.logger.Error("GET /availability/blocked-dates - Storage unavailable: tenant=%s, error=%v", tenantID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /availability/blocked-dates - Failed to get blocked dates: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/blocked-dates - tenant=%s, month=%d-%02d, count=%d", tenantID, year, month, len(dates))
	handlers.RespondJSON(w, http.StatusOK, FromDomainDates(year, month, dates))
}
