package create_appointment

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID     string           // ID клиента (от провайдера идентичности)
	BusinessID     string           // ID бизнеса
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Note           *string          // Заметка клиента (опционально)
	IdempotencyKey *string          // Ключ для безопасного повтора запроса (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string
	BusinessID      string
	CustomerID      string
	AppointmentDate time.Time
	StartTime       types.TimeString
	Status          string
	Note            *string
	CreatedAt       time.Time
}
