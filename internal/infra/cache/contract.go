package cache

import (
	"context"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// AppointmentStore хранилище, которое оборачивает кеш
type AppointmentStore interface {
	InsertIfAbsent(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string, expected ...domain.AppointmentStatus) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
