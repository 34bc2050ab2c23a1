package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// StatusResponse ответ проверок живости и готовности
type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Live GET /healthz - процесс жив
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Ready GET /readyz - база отвечает
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /readyz - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ready"})
}
