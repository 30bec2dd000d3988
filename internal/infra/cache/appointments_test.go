package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/memory"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func block() *domain.Appointment {
	return &domain.Appointment{
		BusinessID:      "biz-1",
		AppointmentDate: testDate,
		StartTime:       "10:00",
		Status:          domain.StatusBlocked,
	}
}

func TestDisabledCache_PassesThrough(t *testing.T) {
	inner := memory.NewAppointmentStore()
	store := NewAppointmentStore(inner, nil, time.Minute, logger.NewNop())
	ctx := context.Background()

	created, err := store.InsertIfAbsent(ctx, block())
	require.NoError(t, err)

	list, err := store.ListByBusinessAndDate(ctx, "biz-1", testDate)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	list, err = store.ListByBusinessAndDate(ctx, "biz-1", testDate)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, store.Close())
}

func TestUnreachableRedis_FallsBackToStore(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})

	inner := memory.NewAppointmentStore()
	store := NewAppointmentStore(inner, client, time.Minute, logger.NewNop())
	defer store.Close()
	ctx := context.Background()

	_, err := store.InsertIfAbsent(ctx, block())
	require.NoError(t, err, "a failed invalidation must not fail the write")

	list, err := store.ListByBusinessAndDate(ctx, "biz-1", testDate)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "appointments:biz-1:2026-03-02", dayKey("biz-1", testDate))
}
