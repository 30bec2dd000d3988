package scheduling

import (
	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// Resolve возвращает candidates без занятых значений, сохраняя исходный порядок.
// Входные срезы не изменяются
func Resolve(candidates []types.TimeString, occupied []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := taken[c]; ok {
			continue
		}
		free = append(free, c)
	}
	return free
}

// OccupiedTimes собирает время начала всех записей, занимающих слот.
// Заблокированные бизнесом слоты занимают время так же, как обычные записи
func OccupiedTimes(appointments []*domain.Appointment) []types.TimeString {
	occupied := make([]types.TimeString, 0, len(appointments))
	for _, a := range appointments {
		if a == nil || !a.OccupiesSlot() {
			continue
		}
		occupied = append(occupied, a.StartTime)
	}
	return occupied
}

// FilterAfter оставляет только слоты, начинающиеся строго позже cutoff
func FilterAfter(slots []types.TimeString, cutoff types.TimeString) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.IsAfter(cutoff) {
			result = append(result, s)
		}
	}
	return result
}
