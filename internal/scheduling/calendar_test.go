package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// 2026-03-02 is a Monday, 2026-03-07 a Saturday
var (
	monday   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
)

func morningBusiness() *domain.Business {
	return &domain.Business{
		ID:                  "biz-1",
		WorkingDays:         weekdays,
		OpeningTime:         "09:00",
		ClosingTime:         "12:00",
		SlotDurationMinutes: 30,
	}
}

func TestGenerateSlots_WorkingDay(t *testing.T) {
	slots, err := GenerateSlots(morningBusiness(), monday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	slots, err := GenerateSlots(morningBusiness(), saturday)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_TrailingPartialSlotDropped(t *testing.T) {
	b := morningBusiness()
	b.ClosingTime = "11:50"
	b.SlotDurationMinutes = 40

	slots, err := GenerateSlots(b, monday)
	require.NoError(t, err)
	// 09:00, 09:40, 10:20, 11:00 -> 11:40 ends at 12:20 and is dropped
	assert.Equal(t, []types.TimeString{"09:00", "09:40", "10:20", "11:00"}, slots)
}

func TestGenerateSlots_SlotLongerThanDay(t *testing.T) {
	b := morningBusiness()
	b.SlotDurationMinutes = 240

	slots, err := GenerateSlots(b, monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Ordering(t *testing.T) {
	configs := []struct {
		open, close types.TimeString
		step        int
	}{
		{"00:00", "23:59", 15},
		{"08:15", "17:45", 25},
		{"10:00", "10:05", 5},
		{"06:30", "22:00", 45},
	}

	for _, c := range configs {
		b := morningBusiness()
		b.OpeningTime, b.ClosingTime, b.SlotDurationMinutes = c.open, c.close, c.step

		slots, err := GenerateSlots(b, monday)
		require.NoError(t, err)

		closing, _ := c.close.Minutes()
		prev := -1
		for _, s := range slots {
			m, err := s.Minutes()
			require.NoError(t, err)
			assert.Greater(t, m, prev, "slots must strictly increase")
			if prev >= 0 {
				assert.GreaterOrEqual(t, m-prev, c.step, "slots must not overlap")
			}
			assert.LessOrEqual(t, m+c.step, closing)
			prev = m
		}
	}
}

func TestGenerateSlots_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *domain.Business)
	}{
		{"unparsable opening", func(b *domain.Business) { b.OpeningTime = "nine" }},
		{"opening after closing", func(b *domain.Business) { b.OpeningTime = "13:00" }},
		{"zero slot duration", func(b *domain.Business) { b.SlotDurationMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := morningBusiness()
			tt.mutate(b)
			// even a non-working day must not hide a broken configuration
			_, err := GenerateSlots(b, saturday)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestIsSlot(t *testing.T) {
	ok, err := IsSlot(morningBusiness(), monday, "10:30")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsSlot(morningBusiness(), monday, "10:15")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSlot(morningBusiness(), saturday, "10:30")
	require.NoError(t, err)
	assert.False(t, ok)
}
