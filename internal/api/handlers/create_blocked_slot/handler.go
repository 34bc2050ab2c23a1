package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar/models"
)

const (
	msgMissingTenant      = "организация не указана"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlock       = "некорректная блокировка: нужна дата YYYY-MM-DD и время HH:MM на сетке слотов либо allDay"
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

// Handle POST /api/v1/calendar/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	var req models.CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.CreateBlockedSlot(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar/blocked-slots - Invalid block: tenant=%s, %v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /calendar/blocked-slots - Failed to create block: tenant=%s, date=%s, error=%v",
				tenantID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/blocked-slots - Block created successfully: id=%d, tenant=%s, date=%s, all_day=%t",
		slot.ID, tenantID, slot.Date, slot.AllDay)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
