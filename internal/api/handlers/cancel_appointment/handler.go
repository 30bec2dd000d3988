package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "отменить запись могут только клиент или владелец бизнеса"
	msgCannotCancel     = "запись нельзя отменить в текущем статусе"
	msgStoreUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
// Повторная отмена отвечает тем же 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), appointmentID, userID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: id=%s, user=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("DELETE /appointments/{id} - Cannot cancel: id=%s, error=%v", appointmentID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointments.ErrStoreFailure):
			h.logger.Error("DELETE /appointments/{id} - Store failure: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled: id=%s", appointmentID)
	handlers.RespondNoContent(w)
}
