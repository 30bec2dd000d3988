package domain

import "github.com/DennizCann/RandevuApp-sub000/pkg/types"

// Slot время начала слота: открытие + k * длительность слота
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndTime время окончания слота
func (s Slot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
