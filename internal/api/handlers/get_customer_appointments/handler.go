package get_customer_appointments

import (
	"errors"
	"net/http"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/api/middleware"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
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

// Handle GET /api/v1/customers/me/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, appointments.ErrStoreFailure) {
			h.logger.Error("GET /customers/me/appointments - Store failure: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
			return
		}
		h.logger.Error("GET /customers/me/appointments - Failed to list: customer_id=%s, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/me/appointments - Listed %d appointments: customer_id=%s",
		len(list.Appointments), customerID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
