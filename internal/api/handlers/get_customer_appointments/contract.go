package get_customer_appointments

import (
	"context"

	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByCustomer(ctx context.Context, customerID string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
