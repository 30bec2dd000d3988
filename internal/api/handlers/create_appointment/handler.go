package create_appointment

import (
	"errors"
	"net/http"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	createAppointment "github.com/DennizCann/RandevuApp-sub000/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные записи"
	msgBusinessNotFound   = "бизнес не найден"
	msgInvalidConfig      = "некорректные рабочие часы бизнеса"
	msgInvalidTimeSlot    = "время не совпадает со слотом расписания"
	msgNotInFuture        = "слот уже начался или прошел"
	msgSlotUnavailable    = "выбранный слот уже занят"
	msgStoreUnavailable   = "хранилище временно недоступно"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Headers: X-User-ID (required), Idempotency-Key (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID, handlers.IdempotencyKey(r))
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrBusinessNotFound):
			h.logger.Warn("POST /appointments - Business not found: business_id=%s", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createAppointment.ErrInvalidConfiguration):
			h.logger.Warn("POST /appointments - Invalid configuration: business_id=%s", req.BusinessID)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: business_id=%s, time=%s", req.BusinessID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrNotInFuture):
			h.logger.Warn("POST /appointments - Slot not in future: business_id=%s, date=%s, time=%s",
				req.BusinessID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgNotInFuture)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: business_id=%s, date=%s, time=%s",
				req.BusinessID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrStoreFailure):
			h.logger.Error("POST /appointments - Store failure: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, customer_id=%s, business_id=%s",
		result.ID, customerID, result.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
