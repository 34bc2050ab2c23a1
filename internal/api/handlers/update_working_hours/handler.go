package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar/models"
)

const (
	msgMissingTenant      = "организация не указана"
	msgInvalidWeekday     = "некорректный день недели, ожидается 0 (воскресенье) - 6 (суббота)"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные часы работы: ожидается HH:MM, конец позже начала"
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

// Handle PUT /api/v1/calendar/working-hours/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	weekday, err := strconv.Atoi(mux.Vars(r)["weekday"])
	if err != nil || weekday < int(time.Sunday) || weekday > int(time.Saturday) {
		h.logger.Warn("PUT /calendar/working-hours/{weekday} - Invalid weekday: %q", mux.Vars(r)["weekday"])
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req models.SetWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/working-hours/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours, err := h.service.SetWorkingHours(r.Context(), tenantID, time.Weekday(weekday), &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PUT /calendar/working-hours/{weekday} - Invalid hours: tenant=%s, weekday=%d, %v", tenantID, weekday, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /calendar/working-hours/{weekday} - Failed to set working hours: tenant=%s, weekday=%d, error=%v",
				tenantID, weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/working-hours/{weekday} - Working hours updated successfully: tenant=%s, weekday=%d, open=%t",
		tenantID, weekday, hours.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, hours)
}
