package get_working_hours

import (
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
)

const msgMissingTenant = "организация не указана"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	week, err := h.service.GetWeek(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /calendar/working-hours - Failed to get working hours: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar/working-hours - Working hours retrieved successfully: tenant=%s", tenantID)
	handlers.RespondJSON(w, http.StatusOK, week)
}
