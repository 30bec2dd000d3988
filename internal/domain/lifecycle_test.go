package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},

		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusBlocked, false},
		{StatusConfirmed, StatusPending, false},
		{StatusBlocked, StatusCancelled, false},
		{StatusBlocked, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
		{StatusPending, AppointmentStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.IsInitial())
	assert.True(t, StatusBlocked.IsInitial())
	assert.False(t, StatusConfirmed.IsInitial())

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusBlocked.IsTerminal())

	for _, st := range OccupyingStatuses {
		assert.True(t, st.IsOccupying(), st)
	}
	assert.False(t, StatusCancelled.IsOccupying())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseStatus("CONFIRMED")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
