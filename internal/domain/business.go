package domain

import (
	"fmt"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// Business поставщик услуг с недельным расписанием рабочих часов
type Business struct {
	ID                  string
	OwnerID             string
	Name                string
	WorkingDays         []time.Weekday
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	SlotDurationMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// WorksOn принимает ли бизнес записи в этот день недели
func (b *Business) WorksOn(day time.Weekday) bool {
	for _, d := range b.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate проверяет рабочие часы. Некорректная конфигурация отклоняется, а не исправляется
func (b *Business) Validate() error {
	open, err := b.OpeningTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: opening time: %v", ErrInvalidConfiguration, err)
	}
	closing, err := b.ClosingTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: closing time: %v", ErrInvalidConfiguration, err)
	}
	if open >= closing {
		return fmt.Errorf("%w: opening time %s must be before closing time %s",
			ErrInvalidConfiguration, b.OpeningTime, b.ClosingTime)
	}
	if b.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d",
			ErrInvalidConfiguration, b.SlotDurationMinutes)
	}
	for _, d := range b.WorkingDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidConfiguration, d)
		}
	}
	return nil
}
