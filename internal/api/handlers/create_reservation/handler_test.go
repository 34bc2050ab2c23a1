package create_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
	createReservation "github.com/Celia92000/laia-skin-nextjs-sub023/internal/usecase/create_reservation"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
)

type fakeUseCase struct {
	err error
	got *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}

	created := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	services := make([]domain.ReservedService, len(req.ServiceIDs))
	for i, id := range req.ServiceIDs {
		services[i] = domain.ReservedService{ServiceID: id, DurationMinutes: 30}
	}
	return &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:           11,
			TenantID:     req.TenantID,
			Date:         req.Date,
			Time:         req.Time,
			Status:       domain.StatusConfirmed,
			CustomerName: req.CustomerName,
			Services:     services,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
		DurationMinutes: domain.EffectiveDurationMinutes(services),
	}, nil
}

const validBody = `{
	"date": "2026-10-19",
	"time": "10:00",
	"serviceIds": [1, 2],
	"customerName": "Camille Martin"
}`

func serve(uc *fakeUseCase, tenantID domain.TenantID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req = req.WithContext(middleware.WithTenantID(req.Context(), tenantID))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	tenantID := domain.NewTenantID()
	uc := &fakeUseCase{}

	rec := serve(uc, tenantID, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id": 11,
		"date": "2026-10-19",
		"time": "10:00",
		"durationMinutes": 75,
		"status": "confirmed",
		"customerName": "Camille Martin",
		"serviceIds": [1, 2],
		"createdAt": "2026-10-18T12:00:00Z",
		"updatedAt": "2026-10-18T12:00:00Z"
	}`, rec.Body.String())

	require.NotNil(t, uc.got)
	assert.Equal(t, tenantID, uc.got.TenantID)
	assert.Equal(t, "2026-10-19", uc.got.Date.String())
	assert.Equal(t, []int64{1, 2}, uc.got.ServiceIDs)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"date":`},
		{"unknown field", `{"date":"2026-10-19","time":"10:00","serviceIds":[1],"customerName":"A","room":3}`},
		{"bad date", `{"date":"19/10/2026","time":"10:00","serviceIds":[1],"customerName":"A"}`},
		{"bad time", `{"date":"2026-10-19","time":"10h","serviceIds":[1],"customerName":"A"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(uc, domain.NewTenantID(), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot taken", createReservation.ErrSlotNotAvailable, http.StatusConflict},
		{"unknown service", fmt.Errorf("%w: id=99", createReservation.ErrServiceNotFound), http.StatusNotFound},
		{"past date", createReservation.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: customer name is required", createReservation.ErrInvalidInput), http.StatusBadRequest},
		{"storage down", fmt.Errorf("%w: availability check: %w", createReservation.ErrInternal, availability.ErrDependency), http.StatusServiceUnavailable},
		{"internal", fmt.Errorf("%w: create", createReservation.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, domain.NewTenantID(), validBody)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
