package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestLive(t *testing.T) {
	h := NewHandler(pingerFunc(func(context.Context) error { return errors.New("down") }), logger.NewNop())
	rec := httptest.NewRecorder()

	h.Live(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		ping   error
		status int
		body   string
	}{
		{"database up", nil, http.StatusOK, `{"status":"ready"}`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(pingerFunc(func(context.Context) error { return tt.ping }), logger.NewNop())
			rec := httptest.NewRecorder()

			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
