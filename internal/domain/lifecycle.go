package domain

import "fmt"

// AppointmentStatus статус записи в жизненном цикле
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusBlocked   AppointmentStatus = "blocked"
)

// Таблица допустимых переходов.
// Снятие блокировки это удаление, поэтому из BLOCKED переходов нет
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// ParseStatus разбирает внешнее значение в известный статус
func ParseStatus(s string) (AppointmentStatus, error) {
	st := AppointmentStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, s)
	}
	return st, nil
}

// IsValid true для одного из пяти известных статусов
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// IsInitial статусы, в которых запись может быть создана
func (s AppointmentStatus) IsInitial() bool {
	return s == StatusPending || s == StatusBlocked
}

// IsTerminal из статуса нет переходов
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsOccupying запись в этом статусе держит слот
func (s AppointmentStatus) IsOccupying() bool {
	return s.IsValid() && s != StatusCancelled
}

// CanTransition есть ли переход from -> to в таблице
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition возвращает ErrInvalidTransition для перехода вне таблицы
func ValidateTransition(from, to AppointmentStatus) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: unknown status %q -> %q", ErrInvalidTransition, from, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
