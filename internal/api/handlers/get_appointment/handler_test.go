package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments/models"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

type fakeService struct {
	gotUser string
	err     error
}

func (f *fakeService) GetByID(_ context.Context, id string, userID string) (*models.AppointmentResponse, error) {
	f.gotUser = userID
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: "pending"}, nil
}

func get(svc *fakeService, user string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{appointmentId}", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodGet, "/appointments/appt-9", nil)
	if user != "" {
		req.Header.Set(middleware.UserIDHeader, user)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := get(svc, "customer-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"appt-9"`)
	assert.Equal(t, "customer-1", svc.gotUser)

	assert.Equal(t, http.StatusUnauthorized, get(&fakeService{}, "").Code)
	assert.Equal(t, http.StatusForbidden, get(&fakeService{err: appointments.ErrAccessDenied}, "someone").Code)
	assert.Equal(t, http.StatusNotFound, get(&fakeService{err: appointments.ErrAppointmentNotFound}, "customer-1").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(&fakeService{err: appointments.ErrStoreFailure}, "customer-1").Code)
}
