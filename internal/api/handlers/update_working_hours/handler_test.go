package update_working_hours

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar/models"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
)

type fakeService struct {
	err error

	gotWeekday time.Weekday
	gotReq     *models.SetWorkingHoursRequest
}

func (f *fakeService) SetWorkingHours(_ context.Context, _ domain.TenantID, weekday time.Weekday, req *models.SetWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	f.gotWeekday, f.gotReq = weekday, req
	if f.err != nil {
		return nil, f.err
	}
	resp := models.FromDomainWorkingHours(&domain.WorkingHours{
		DayOfWeek: weekday, IsOpen: req.IsOpen, StartTime: req.StartTime, EndTime: req.EndTime,
	})
	return &resp, nil
}

func serve(svc *fakeService, weekday, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/calendar/working-hours/"+weekday, strings.NewReader(body))
	req = req.WithContext(middleware.WithTenantID(req.Context(), domain.NewTenantID()))
	req = mux.SetURLVars(req, map[string]string{"weekday": weekday})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "6", `{"isOpen":true,"startTime":"10:00","endTime":"16:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dayOfWeek":6,"dayName":"Saturday","isOpen":true,"startTime":"10:00","endTime":"16:00"}`, rec.Body.String())
	assert.Equal(t, time.Saturday, svc.gotWeekday)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		weekday string
		body    string
		err     error
		status  int
	}{
		{"weekday out of range", "7", `{"isOpen":false}`, nil, http.StatusBadRequest},
		{"weekday not a number", "monday", `{"isOpen":false}`, nil, http.StatusBadRequest},
		{"bad body", "1", `{"isOpen":"yes"}`, nil, http.StatusBadRequest},
		{"invalid hours", "1", `{"isOpen":true,"startTime":"18:00","endTime":"09:00"}`,
			fmt.Errorf("%w: end must be after start", calendar.ErrInvalidInput), http.StatusBadRequest},
		{"internal", "1", `{"isOpen":false}`, calendar.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.weekday, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
