package get_business_appointments

import (
	"context"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time, userID string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
