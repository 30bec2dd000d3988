package get_available_slots

import (
	"context"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// AppointmentStore интерфейс хранилища записей (только чтение)
type AppointmentStore interface {
	ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error)
}

// BusinessDirectory интерфейс справочника бизнесов
type BusinessDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
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

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
