package delete_blocked_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/api/middleware"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
)

type fakeService struct {
	err   error
	gotID int64
}

func (f *fakeService) DeleteBlockedSlot(_ context.Context, _ domain.TenantID, id int64) error {
	f.gotID = id
	return f.err
}

func serve(svc *fakeService, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/calendar/blocked-slots/"+id, nil)
	req = req.WithContext(middleware.WithTenantID(req.Context(), domain.NewTenantID()))
	req = mux.SetURLVars(req, map[string]string{"blockedSlotId": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "9")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(9), svc.gotID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "0").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: calendar.ErrBlockedSlotNotFound}, "9").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: calendar.ErrInternal}, "9").Code)
}
