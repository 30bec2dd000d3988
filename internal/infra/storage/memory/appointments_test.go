package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/appointment"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func pending(start types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		BusinessID:      "biz-1",
		CustomerID:      "cust-1",
		AppointmentDate: testDate,
		StartTime:       start,
		Status:          domain.StatusPending,
	}
}

func TestInsertIfAbsent_Conflict(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	first, err := store.InsertIfAbsent(ctx, pending("10:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = store.InsertIfAbsent(ctx, pending("10:00"))
	assert.ErrorIs(t, err, appointment.ErrSlotConflict)

	other := pending("10:00")
	other.BusinessID = "biz-2"
	_, err = store.InsertIfAbsent(ctx, other)
	assert.NoError(t, err, "another business may use the same time")
}

func TestInsertIfAbsent_Concurrent(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	const callers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		success  int
		conflict int
	)

	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := store.InsertIfAbsent(ctx, pending("11:00"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
			} else if assert.ErrorIs(t, err, appointment.ErrSlotConflict) {
				conflict++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, callers-1, conflict)
}

func TestInsertIfAbsent_Idempotency(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	key := "retry-1"
	appt := pending("09:00")
	appt.IdempotencyKey = &key

	first, err := store.InsertIfAbsent(ctx, appt)
	require.NoError(t, err)

	replay, err := store.InsertIfAbsent(ctx, appt)
	require.NoError(t, err)
	assert.Equal(t, first.ID, replay.ID)

	moved := pending("09:30")
	moved.IdempotencyKey = &key
	_, err = store.InsertIfAbsent(ctx, moved)
	assert.ErrorIs(t, err, appointment.ErrSlotConflict)
}

func TestDelete_ReleasesSlot(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	created, err := store.InsertIfAbsent(ctx, pending("10:00"))
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	again, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)

	_, err = store.InsertIfAbsent(ctx, pending("10:00"))
	assert.NoError(t, err)
}

func TestDelete_ExpectedStatus(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	created, err := store.InsertIfAbsent(ctx, pending("10:00"))
	require.NoError(t, err)

	_, err = store.Delete(ctx, created.ID, domain.StatusBlocked)
	assert.ErrorIs(t, err, appointment.ErrStatusConflict)

	_, err = store.GetByID(ctx, created.ID)
	assert.NoError(t, err, "record must survive a rejected delete")
}

func TestUpdateStatus(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	created, err := store.InsertIfAbsent(ctx, pending("10:00"))
	require.NoError(t, err)

	updated, err := store.UpdateStatus(ctx, created.ID, domain.StatusPending, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	_, err = store.UpdateStatus(ctx, created.ID, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, appointment.ErrStatusConflict)

	_, err = store.UpdateStatus(ctx, "missing", domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, appointment.ErrAppointmentNotFound)
}

func TestListings(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	for _, start := range []types.TimeString{"11:00", "09:00", "10:00"} {
		_, err := store.InsertIfAbsent(ctx, pending(start))
		require.NoError(t, err)
	}
	nextDay := pending("08:00")
	nextDay.AppointmentDate = testDate.AddDate(0, 0, 1)
	_, err := store.InsertIfAbsent(ctx, nextDay)
	require.NoError(t, err)

	day, err := store.ListByBusinessAndDate(ctx, "biz-1", testDate)
	require.NoError(t, err)
	require.Len(t, day, 3)
	assert.Equal(t, types.TimeString("09:00"), day[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), day[2].StartTime)

	history, err := store.ListByCustomer(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, types.TimeString("08:00"), history[0].StartTime, "newest first")

	day[0].StartTime = "23:00"
	fresh, err := store.ListByBusinessAndDate(ctx, "biz-1", testDate)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), fresh[0].StartTime, "returned values are copies")
}

func TestInsertIfAbsent_IdempotencyKeyIsPerCustomer(t *testing.T) {
	store := NewAppointmentStore()
	ctx := context.Background()

	key := "retry-1"
	alice := pending("10:00")
	alice.CustomerID = "alice"
	alice.IdempotencyKey = &key

	first, err := store.InsertIfAbsent(ctx, alice)
	require.NoError(t, err)

	bob := pending("10:00")
	bob.CustomerID = "bob"
	bob.IdempotencyKey = &key
	_, err = store.InsertIfAbsent(ctx, bob)
	assert.ErrorIs(t, err, appointment.ErrSlotConflict)

	block := pending("10:00")
	block.CustomerID = ""
	block.Status = domain.StatusBlocked
	block.IdempotencyKey = &key
	_, err = store.InsertIfAbsent(ctx, block)
	assert.ErrorIs(t, err, appointment.ErrSlotConflict)

	bobElsewhere := pending("11:00")
	bobElsewhere.CustomerID = "bob"
	bobElsewhere.IdempotencyKey = &key
	other, err := store.InsertIfAbsent(ctx, bobElsewhere)
	require.NoError(t, err, "the same key of another customer does not collide")
	assert.NotEqual(t, first.ID, other.ID)
}
