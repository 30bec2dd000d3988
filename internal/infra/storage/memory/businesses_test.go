package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
)

func TestBusinessDirectory(t *testing.T) {
	dir := NewBusinessDirectory()
	ctx := context.Background()

	created, err := dir.Create(ctx, &domain.Business{
		ID:                  "biz-1",
		WorkingDays:         []time.Weekday{time.Monday},
		OpeningTime:         "09:00",
		ClosingTime:         "12:00",
		SlotDurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "biz-1", created.ID)

	_, err = dir.Create(ctx, &domain.Business{ID: "biz-1"})
	assert.ErrorIs(t, err, business.ErrBusinessExists)

	updated, err := dir.UpdateWorkingHours(ctx, &domain.Business{
		ID:                  "biz-1",
		WorkingDays:         []time.Weekday{time.Tuesday},
		OpeningTime:         "10:00",
		ClosingTime:         "14:00",
		SlotDurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Tuesday}, updated.WorkingDays)

	got, err := dir.GetByID(ctx, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, 60, got.SlotDurationMinutes)

	_, err = dir.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, business.ErrBusinessNotFound)

	_, err = dir.UpdateWorkingHours(ctx, &domain.Business{ID: "nope"})
	assert.ErrorIs(t, err, business.ErrBusinessNotFound)
}
