package update_working_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/memory"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

func TestHandle(t *testing.T) {
	svc := business.NewService(memory.NewBusinessDirectory(), time.Second, logger.NewNop())
	created, err := svc.Create(context.Background(), &models.CreateBusinessRequest{
		OwnerID:             "owner-1",
		Name:                "Kuaför",
		WorkingDays:         []string{"monday"},
		OpeningTime:         "09:00",
		ClosingTime:         "12:00",
		SlotDurationMinutes: 30,
	})
	require.NoError(t, err)

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/businesses/{businessId}/working-hours", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	put := func(id, user, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/businesses/"+id+"/working-hours", strings.NewReader(body))
		if user != "" {
			req.Header.Set(middleware.UserIDHeader, user)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	valid := `{"workingDays":["monday","friday"],"openingTime":"10:00","closingTime":"16:00","slotDurationMinutes":45}`

	rec := put(created.ID, "owner-1", valid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openingTime":"10:00"`)

	assert.Equal(t, http.StatusUnauthorized, put(created.ID, "", valid).Code)
	assert.Equal(t, http.StatusForbidden, put(created.ID, "someone", valid).Code)
	assert.Equal(t, http.StatusNotFound, put("missing", "owner-1", valid).Code)
	assert.Equal(t, http.StatusBadRequest, put(created.ID, "owner-1",
		`{"workingDays":["monday"],"openingTime":"18:00","closingTime":"09:00","slotDurationMinutes":30}`).Code)
}
