package get_customer_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments/models"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

type fakeService struct {
	gotCustomer string
}

func (f *fakeService) ListByCustomer(_ context.Context, customerID string) (*models.AppointmentListResponse, error) {
	f.gotCustomer = customerID
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: "a1"}}}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/customers/me/appointments", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = req.WithContext(middleware.WithUserID(req.Context(), "customer-3"))
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "customer-3", svc.gotCustomer)
	assert.Contains(t, rec.Body.String(), `"id":"a1"`)
}
