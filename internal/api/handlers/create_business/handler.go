package create_business

import (
	"errors"
	"net/http"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "название бизнеса обязательно"
	msgInvalidConfig      = "некорректные рабочие часы"
	msgBusinessExists     = "бизнес уже существует"
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

// Handle POST /api/v1/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = ownerID

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, business.ErrInvalidConfiguration):
			h.logger.Warn("POST /businesses - Invalid configuration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, business.ErrBusinessExists):
			handlers.RespondConflict(w, msgBusinessExists)

		case errors.Is(err, business.ErrStoreFailure):
			h.logger.Error("POST /businesses - Store failure: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /businesses - Failed to create business: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses - Business created: id=%s, owner_id=%s", resp.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
