package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// Request модели

// CreateBusinessRequest запрос на регистрацию бизнеса
type CreateBusinessRequest struct {
	OwnerID             string   `json:"-"` // из X-User-ID
	Name                string   `json:"name" validate:"required,max=200"`
	WorkingDays         []string `json:"workingDays"`                             // ["monday", "tuesday", ...]
	OpeningTime         string   `json:"openingTime" validate:"required"`         // "09:00"
	ClosingTime         string   `json:"closingTime" validate:"required"`         // "18:00"
	SlotDurationMinutes int      `json:"slotDurationMinutes" validate:"required"` // 15, 30, 60, etc.
}

// UpdateWorkingHoursRequest запрос на замену рабочих часов
type UpdateWorkingHoursRequest struct {
	UserID              string   `json:"-"` // из X-User-ID
	WorkingDays         []string `json:"workingDays"`
	OpeningTime         string   `json:"openingTime" validate:"required"`
	ClosingTime         string   `json:"closingTime" validate:"required"`
	SlotDurationMinutes int      `json:"slotDurationMinutes" validate:"required"`
}

// Response модели

// BusinessResponse ответ с данными бизнеса
type BusinessResponse struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"ownerId"`
	Name                string    `json:"name"`
	WorkingDays         []string  `json:"workingDays"`
	OpeningTime         string    `json:"openingTime"`
	ClosingTime         string    `json:"closingTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	days := make([]string, len(b.WorkingDays))
	for i, d := range b.WorkingDays {
		days[i] = strings.ToLower(d.String())
	}

	return &BusinessResponse{
		ID:                  b.ID,
		OwnerID:             b.OwnerID,
		Name:                b.Name,
		WorkingDays:         days,
		OpeningTime:         b.OpeningTime.String(),
		ClosingTime:         b.ClosingTime.String(),
		SlotDurationMinutes: b.SlotDurationMinutes,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// ParseWeekdays конвертирует названия дней недели ("monday") в time.Weekday, убирая дубли
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool, len(names))
	days := make([]time.Weekday, 0, len(names))

	for _, name := range names {
		day, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	return days, nil
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
