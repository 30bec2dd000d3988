package create_appointment

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	createAppointment "github.com/DennizCann/RandevuApp-sub000/internal/usecase/create_appointment"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BusinessID string  `json:"businessId" validate:"required"`
	Date       string  `json:"date" validate:"required"`      // "2026-03-02"
	StartTime  string  `json:"startTime" validate:"required"` // "10:00"
	Note       *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"businessId"`
	CustomerID      string  `json:"customerId"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	Status          string  `json:"status"`
	Note            *string `json:"note,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID string, idempotencyKey *string) (*createAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID:     customerID,
		BusinessID:     r.BusinessID,
		Date:           date,
		StartTime:      startTime,
		Note:           r.Note,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		CustomerID:      resp.CustomerID,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
		Note:            resp.Note,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
