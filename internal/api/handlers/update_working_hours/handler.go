package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidConfig      = "некорректные рабочие часы"
	msgBusinessNotFound   = "бизнес не найден"
	msgForbidden          = "изменять рабочие часы может только владелец"
	msgStoreUnavailable   = "хранилище временно недоступно"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	resp, err := h.service.UpdateWorkingHours(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidConfiguration):
			h.logger.Warn("PUT /businesses/{id}/working-hours - Invalid configuration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, business.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, business.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{id}/working-hours - Access denied: business_id=%s, user_id=%s", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, business.ErrStoreFailure):
			h.logger.Error("PUT /businesses/{id}/working-hours - Store failure: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /businesses/{id}/working-hours - Failed to update: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/working-hours - Working hours updated: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
