package block_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/memory"
	"github.com/DennizCann/RandevuApp-sub000/internal/scheduling"
	"github.com/DennizCann/RandevuApp-sub000/pkg/logger"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

const owner = "owner-1"

func setup(t *testing.T) (*UseCase, *memory.AppointmentStore) {
	t.Helper()

	dir := memory.NewBusinessDirectory()
	_, err := dir.Create(context.Background(), &domain.Business{
		ID:                  "biz-1",
		OwnerID:             owner,
		WorkingDays:         []time.Weekday{time.Monday},
		OpeningTime:         "09:00",
		ClosingTime:         "12:00",
		SlotDurationMinutes: 30,
	})
	require.NoError(t, err)

	store := memory.NewAppointmentStore()
	uc := NewUseCase(store, dir, nil, time.UTC, time.Second, logger.NewNop())
	uc.timeProvider = fixedTime{now: monday.Add(-time.Hour)}
	return uc, store
}

func TestExecute_BlocksSlot(t *testing.T) {
	uc, store := setup(t)

	reason := "lunch"
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     owner,
		BusinessID: "biz-1",
		Date:       monday,
		StartTime:  "10:00",
		Reason:     &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBlocked), resp.Status)

	appts, err := store.ListByBusinessAndDate(context.Background(), "biz-1", monday)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Empty(t, appts[0].CustomerID)

	candidates, err := scheduling.GenerateSlots(&domain.Business{
		WorkingDays:         []time.Weekday{time.Monday},
		OpeningTime:         "09:00",
		ClosingTime:         "12:00",
		SlotDurationMinutes: 30,
	}, monday)
	require.NoError(t, err)
	free := scheduling.Resolve(candidates, scheduling.OccupiedTimes(appts))
	assert.NotContains(t, free, types.TimeString("10:00"))
}

func TestExecute_OccupiedSlot(t *testing.T) {
	uc, store := setup(t)

	_, err := store.InsertIfAbsent(context.Background(), &domain.Appointment{
		BusinessID:      "biz-1",
		CustomerID:      "cust-1",
		AppointmentDate: monday,
		StartTime:       "10:00",
		Status:          domain.StatusConfirmed,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{UserID: owner, BusinessID: "biz-1", Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{UserID: owner, BusinessID: "", Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: owner, BusinessID: "other", Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = uc.Execute(context.Background(), &Request{UserID: owner, BusinessID: "biz-1", Date: monday, StartTime: "10:10"})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	uc.timeProvider = fixedTime{now: monday.Add(11 * time.Hour)}
	_, err = uc.Execute(context.Background(), &Request{UserID: owner, BusinessID: "biz-1", Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrNotInFuture)
}

func TestExecute_OnlyOwnerBlocks(t *testing.T) {
	uc, store := setup(t)

	_, err := uc.Execute(context.Background(), &Request{UserID: "cust-1", BusinessID: "biz-1", Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: "biz-1", Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	appts, err := store.ListByBusinessAndDate(context.Background(), "biz-1", monday)
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestExecute_BlockNeverReplaysCustomerBooking(t *testing.T) {
	uc, store := setup(t)

	key := "retry-1"
	_, err := store.InsertIfAbsent(context.Background(), &domain.Appointment{
		BusinessID:      "biz-1",
		CustomerID:      "cust-1",
		AppointmentDate: monday,
		StartTime:       "10:00",
		Status:          domain.StatusPending,
		IdempotencyKey:  &key,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         owner,
		BusinessID:     "biz-1",
		Date:           monday,
		StartTime:      "10:00",
		IdempotencyKey: &key,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, resp)
}
