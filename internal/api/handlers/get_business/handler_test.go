package get_business

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/DennizCann/RandevuApp-sub000/internal/service/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetBusiness(_ context.Context, id string) (*models.BusinessResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BusinessResponse{ID: id, OpeningTime: "09:00", ClosingTime: "12:00", SlotDurationMinutes: 30}, nil
}

func get(svc *fakeService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/businesses/{businessId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/businesses/biz-1", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(&fakeService{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slotDurationMinutes":30`)

	assert.Equal(t, http.StatusNotFound, get(&fakeService{err: business.ErrBusinessNotFound}).Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(&fakeService{err: business.ErrStoreFailure}).Code)
}
