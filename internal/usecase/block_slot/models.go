package block_slot

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// Request модель запроса на блокировку слота бизнесом
type Request struct {
	UserID         string // кто закрывает слот, должен быть владельцем бизнеса
	BusinessID     string
	Date           time.Time
	StartTime      types.TimeString
	Reason         *string // Причина блокировки, сохраняется как заметка
	IdempotencyKey *string
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID              string
	BusinessID      string
	AppointmentDate time.Time
	StartTime       types.TimeString
	Status          string
	Reason          *string
	CreatedAt       time.Time
}
