package block_slot

import (
	"context"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// AppointmentStore интерфейс хранилища записей
type AppointmentStore interface {
	InsertIfAbsent(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// BusinessDirectory интерфейс справочника бизнесов
type BusinessDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}

// ReservationObserver учет исходов бронирования (метрики)
type ReservationObserver interface {
	ObserveReservation(kind, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
