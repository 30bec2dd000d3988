package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

func TestCheckBookable(t *testing.T) {
	sundayBefore := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	mondayMorning := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		start   types.TimeString
		now     time.Time
		wantErr error
	}{
		{name: "future slot", date: monday, start: "10:30", now: sundayBefore},
		{name: "misaligned time", date: monday, start: "10:15", now: sundayBefore, wantErr: ErrNotASlot},
		{name: "after closing", date: monday, start: "12:00", now: sundayBefore, wantErr: ErrNotASlot},
		{name: "non-working day", date: saturday, start: "10:00", now: sundayBefore, wantErr: ErrNotASlot},
		{name: "slot starting now", date: monday, start: "10:00", now: mondayMorning, wantErr: ErrSlotInPast},
		{name: "earlier today", date: monday, start: "09:30", now: mondayMorning, wantErr: ErrSlotInPast},
		{name: "later today", date: monday, start: "10:30", now: mondayMorning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBookable(morningBusiness(), tt.date, tt.start, tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckBookable_InvalidConfiguration(t *testing.T) {
	b := morningBusiness()
	b.SlotDurationMinutes = -1
	err := CheckBookable(b, monday, "10:00", monday.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestFreeSlots(t *testing.T) {
	appts := []*domain.Appointment{
		{StartTime: "10:00", Status: domain.StatusConfirmed},
		{StartTime: "11:00", Status: domain.StatusBlocked},
	}

	t.Run("future date", func(t *testing.T) {
		free, err := FreeSlots(morningBusiness(), monday, appts, monday.AddDate(0, 0, -3))
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30", "11:30"}, free)
	})

	t.Run("today drops started slots", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
		free, err := FreeSlots(morningBusiness(), monday, appts, now)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"10:30", "11:30"}, free)
	})

	t.Run("past date", func(t *testing.T) {
		free, err := FreeSlots(morningBusiness(), monday, appts, monday.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Empty(t, free)
	})
}
