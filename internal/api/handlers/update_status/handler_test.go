package update_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/memory"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments/models"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

const (
	owner    = "owner-1"
	customer = "customer-1"
)

func setup(t *testing.T, status domain.AppointmentStatus) (*mux.Router, string) {
	t.Helper()
	dir := memory.NewBusinessDirectory()
	_, err := dir.Create(context.Background(), &domain.Business{
		ID: "biz-1", OwnerID: owner, WorkingDays: []time.Weekday{time.Monday},
		OpeningTime: "09:00", ClosingTime: "12:00", SlotDurationMinutes: 30,
	})
	require.NoError(t, err)

	store := memory.NewAppointmentStore()
	appt, err := store.InsertIfAbsent(context.Background(), &domain.Appointment{
		BusinessID:      "biz-1",
		CustomerID:      customer,
		AppointmentDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Status:          status,
	})
	require.NoError(t, err)

	svc := appointments.NewService(store, dir, time.Second, logger.NewNop())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{appointmentId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	return r, appt.ID
}

func patch(r *mux.Router, id, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id+"/status", strings.NewReader(body))
	if user != "" {
		req.Header.Set(middleware.UserIDHeader, user)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Confirm(t *testing.T) {
	r, id := setup(t, domain.StatusPending)

	rec := patch(r, id, owner, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_CancelThenConfirmIsGone(t *testing.T) {
	r, id := setup(t, domain.StatusConfirmed)

	rec := patch(r, id, owner, `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)

	// отмененная запись удалена, подтверждать нечего
	assert.Equal(t, http.StatusNotFound, patch(r, id, owner, `{"status":"confirmed"}`).Code)
}

func TestHandle_Errors(t *testing.T) {
	r, id := setup(t, domain.StatusPending)

	assert.Equal(t, http.StatusBadRequest, patch(r, id, owner, `{"status":"archived"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(r, id, owner, `not json`).Code)
	assert.Equal(t, http.StatusConflict, patch(r, id, owner, `{"status":"completed"}`).Code)
	assert.Equal(t, http.StatusNotFound, patch(r, "missing", owner, `{"status":"confirmed"}`).Code)
}

func TestHandle_Access(t *testing.T) {
	r, id := setup(t, domain.StatusPending)

	assert.Equal(t, http.StatusUnauthorized, patch(r, id, "", `{"status":"confirmed"}`).Code)
	assert.Equal(t, http.StatusForbidden, patch(r, id, customer, `{"status":"confirmed"}`).Code,
		"a customer cannot confirm their own booking")
	assert.Equal(t, http.StatusForbidden, patch(r, id, "someone", `{"status":"cancelled"}`).Code)

	rec := patch(r, id, customer, `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
