package delete_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar"
)

const (
	msgMissingTenant = "организация не указана"
	msgInvalidID     = "некорректный ID блокировки"
	msgNotFound      = "блокировка не найдена"
)

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

// Handle DELETE /api/v1/calendar/blocked-slots/{blockedSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	id, err := handlers.PathInt64(r, "blockedSlotId")
	if err != nil {
		h.logger.Warn("DELETE /calendar/blocked-slots/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlockedSlot(r.Context(), tenantID, id); err != nil {
		switch {
		case errors.Is(err, calendar.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /calendar/blocked-slots/{id} - Not found: id=%d, tenant=%s", id, tenantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /calendar/blocked-slots/{id} - Failed to delete block: id=%d, tenant=%s, error=%v",
				id, tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendar/blocked-slots/{id} - Block deleted successfully: id=%d, tenant=%s", id, tenantID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
