package claim_reminder

import (
	"errors"
	"net/http"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reminders"
)

const (
	msgMissingTenant      = "организация не указана"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKey         = "некорректный ключ напоминания"
)

type Handler struct {
	ledger ReminderLedger
	logger Logger
}

func NewHandler(ledger ReminderLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle POST /api/v1/reminders/claim
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingTenant)
		return
	}

	var req ClaimReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reminders/claim - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	claimed, err := h.ledger.Claim(r.Context(), tenantID, req.EntityID, domain.ReminderKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrInvalidInput):
			h.logger.Warn("POST /reminders/claim - Invalid key: tenant=%s, %v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		default:
			h.logger.Error("POST /reminders/claim - Failed to claim: tenant=%s, entity=%d, kind=%s, error=%v",
				tenantID, req.EntityID, req.Kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reminders/claim - tenant=%s, entity=%d, kind=%s, claimed=%t", tenantID, req.EntityID, req.Kind, claimed)
	handlers.RespondJSON(w, http.StatusOK, &ClaimReminderResponse{
		EntityID: req.EntityID,
		Kind:     req.Kind,
		Claimed:  claimed,
	})
}
