package scheduling

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// GenerateSlots генерирует все слоты бизнеса на указанную дату в порядке возрастания.
// Слоты идут от открытия с шагом SlotDurationMinutes; хвостовой слот, который не
// помещается целиком до закрытия, отбрасывается.
// Для нерабочего дня возвращается пустой список, для битой конфигурации ErrInvalidConfiguration
func GenerateSlots(business *domain.Business, date time.Time) ([]types.TimeString, error) {
	if err := business.Validate(); err != nil {
		return nil, err
	}

	if !business.WorksOn(date.Weekday()) {
		return []types.TimeString{}, nil
	}

	// Validate уже проверил формат, ошибки здесь невозможны
	open, _ := business.OpeningTime.Minutes()
	closing, _ := business.ClosingTime.Minutes()
	step := business.SlotDurationMinutes

	slots := make([]types.TimeString, 0, (closing-open)/step)
	for current := open; current+step <= closing; current += step {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// IsSlot проверяет, что время совпадает с одним из слотов бизнеса на дату
func IsSlot(business *domain.Business, date time.Time, startTime types.TimeString) (bool, error) {
	slots, err := GenerateSlots(business, date)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s == startTime {
			return true, nil
		}
	}
	return false, nil
}
