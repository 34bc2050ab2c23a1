package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
)

type fakeService struct {
	slots []domain.TimeSlot
	err   error

	gotTenant   domain.TenantID
	gotDay      domain.CalendarDay
	gotDuration *int
}

func (f *fakeService) GetAvailableSlots(_ context.Context, tenantID domain.TenantID, day domain.CalendarDay, durationMinutes *int) ([]domain.TimeSlot, error) {
	f.gotTenant, f.gotDay, f.gotDuration = tenantID, day, durationMinutes
	return f.slots, f.err
}

func serve(t *testing.T, svc *fakeService, tenantID domain.TenantID, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if !tenantID.IsZero() {
		req = req.WithContext(middleware.WithTenantID(req.Context(), tenantID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	tenantID := domain.NewTenantID()
	svc := &fakeService{slots: []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
	}}

	rec := serve(t, svc, tenantID, "/api/v1/availability/slots?date=2026-10-19&duration=90")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-10-19",
		"durationMinutes": 90,
		"slots": [
			{"time": "09:00", "available": true},
			{"time": "09:30", "available": false}
		]
	}`, rec.Body.String())

	assert.Equal(t, tenantID, svc.gotTenant)
	assert.Equal(t, "2026-10-19", svc.gotDay.String())
	require.NotNil(t, svc.gotDuration)
	assert.Equal(t, 90, *svc.gotDuration)
}

func TestHandle_ClosedDayIsEmptyList(t *testing.T) {
	svc := &fakeService{slots: []domain.TimeSlot{}}

	rec := serve(t, svc, domain.NewTenantID(), "/api/v1/availability/slots?date=2026-10-25")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Slots)
	assert.Empty(t, body.Slots)
	assert.Nil(t, svc.gotDuration)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{"missing date", "/api/v1/availability/slots", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/availability/slots?date=19.10.2026", nil, http.StatusBadRequest},
		{"bad duration", "/api/v1/availability/slots?date=2026-10-19&duration=long", nil, http.StatusBadRequest},
		{"duration out of range", "/api/v1/availability/slots?date=2026-10-19&duration=1",
			fmt.Errorf("%w: duration", availability.ErrInvalidInput), http.StatusBadRequest},
		{"storage down", "/api/v1/availability/slots?date=2026-10-19",
			fmt.Errorf("%w: get reservations: timeout", availability.ErrDependency), http.StatusServiceUnavailable},
		{"broken configuration", "/api/v1/availability/slots?date=2026-10-19",
			fmt.Errorf("%w: start time", availability.ErrConfiguration), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.err}, domain.NewTenantID(), tt.url)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_NoTenant(t *testing.T) {
	rec := serve(t, &fakeService{}, domain.TenantID{}, "/api/v1/availability/slots?date=2026-10-19")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
