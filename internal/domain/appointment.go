package domain

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// Appointment запись на один слот бизнеса в одну дату.
// Блокировка от бизнеса без клиента и со статусом BLOCKED
type Appointment struct {
	ID              string
	BusinessID      string
	CustomerID      string
	AppointmentDate time.Time // календарная дата, время всегда полночь
	StartTime       types.TimeString
	Status          AppointmentStatus
	Note            *string
	IdempotencyKey  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBlock true для слота, закрытого бизнесом
func (a *Appointment) IsBlock() bool {
	return a.Status == StatusBlocked
}

// OccupiesSlot true, если запись делает слот недоступным
func (a *Appointment) OccupiesSlot() bool {
	return a.Status.IsOccupying()
}

// IsReplayOf true, если a создана тем же запросом, что и req: тот же слот,
// тот же клиент и тот же вид (блокировка или запись клиента)
func (a *Appointment) IsReplayOf(req *Appointment) bool {
	return a.Key() == req.Key() && a.CustomerID == req.CustomerID && a.IsBlock() == req.IsBlock()
}

// SlotKey слот (бизнес, дата, время), который занимает запись
type SlotKey struct {
	BusinessID string
	Date       string // YYYY-MM-DD
	StartTime  types.TimeString
}

// Key ключ слота записи
func (a *Appointment) Key() SlotKey {
	return SlotKey{
		BusinessID: a.BusinessID,
		Date:       a.AppointmentDate.Format(DateFormat),
		StartTime:  a.StartTime,
	}
}

// DateOnly обрезает t до календарной даты, часовой пояс сохраняется
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
