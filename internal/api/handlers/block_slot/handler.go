package block_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	blockSlot "github.com/DennizCann/RandevuApp-sub000/internal/usecase/block_slot"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "закрывать слоты может только владелец бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgInvalidInput       = "некорректные данные блокировки"
	msgBusinessNotFound   = "бизнес не найден"
	msgInvalidConfig      = "некорректные рабочие часы бизнеса"
	msgInvalidTimeSlot    = "время не совпадает со слотом расписания"
	msgNotInFuture        = "слот уже начался или прошел"
	msgSlotUnavailable    = "слот уже занят"
	msgStoreUnavailable   = "хранилище временно недоступно"
)

type Handler struct {
	useCase BlockSlotUseCase
	logger  Logger
}

func NewHandler(useCase BlockSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /businesses/{id}/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, businessID, handlers.IdempotencyKey(r))
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blockSlot.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/blocks - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, blockSlot.ErrAccessDenied):
			h.logger.Warn("POST /businesses/{id}/blocks - Access denied: business_id=%s, user=%s", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockSlot.ErrInvalidConfiguration):
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, blockSlot.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, blockSlot.ErrNotInFuture):
			handlers.RespondBadRequest(w, msgNotInFuture)

		case errors.Is(err, blockSlot.ErrSlotUnavailable):
			h.logger.Warn("POST /businesses/{id}/blocks - Slot unavailable: business_id=%s, date=%s, time=%s",
				businessID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, blockSlot.ErrStoreFailure):
			h.logger.Error("POST /businesses/{id}/blocks - Store failure: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /businesses/{id}/blocks - Failed to block slot: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/blocks - Slot blocked: id=%s, business_id=%s, date=%s, time=%s",
		result.ID, businessID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
