package cancel_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

type fakeService struct {
	calls   int
	gotUser string
	err     error
}

func (f *fakeService) Cancel(_ context.Context, _ string, userID string) error {
	f.calls++
	f.gotUser = userID
	return f.err
}

func del(svc *fakeService, user string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{appointmentId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/appointments/appt-1", nil)
	if user != "" {
		req.Header.Set(middleware.UserIDHeader, user)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := del(svc, "customer-1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "customer-1", svc.gotUser)

	missing := &fakeService{}
	assert.Equal(t, http.StatusUnauthorized, del(missing, "").Code)
	assert.Zero(t, missing.calls)

	assert.Equal(t, http.StatusForbidden, del(&fakeService{err: appointments.ErrAccessDenied}, "someone").Code)
	assert.Equal(t, http.StatusConflict, del(&fakeService{err: appointments.ErrInvalidTransition}, "customer-1").Code)
	assert.Equal(t, http.StatusServiceUnavailable, del(&fakeService{err: appointments.ErrStoreFailure}, "customer-1").Code)
	assert.Equal(t, http.StatusInternalServerError, del(&fakeService{err: errors.New("boom")}, "customer-1").Code)
}
