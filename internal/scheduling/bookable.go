package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

var (
	// ErrNotASlot время не совпадает ни с одним слотом бизнеса на эту дату
	ErrNotASlot = errors.New("scheduling: time is not a slot of the business on this date")

	// ErrSlotInPast слот уже начался или прошел
	ErrSlotInPast = errors.New("scheduling: slot is not in the future")
)

// CheckBookable проверяет предусловия занятия слота: конфигурация корректна, время входит
// в сетку слотов на дату и начало слота строго позже now. Дата и время трактуются как
// локальные в часовом поясе now
func CheckBookable(business *domain.Business, date time.Time, start types.TimeString, now time.Time) error {
	ok, err := IsSlot(business, date, start)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", ErrNotASlot, date.Format(domain.DateFormat), start)
	}

	startsAt, err := start.On(date, now.Location())
	if err != nil {
		return err
	}
	if !startsAt.After(now) {
		return fmt.Errorf("%w: %s %s", ErrSlotInPast, date.Format(domain.DateFormat), start)
	}

	return nil
}

// FreeSlots свободные слоты бизнеса на дату с учетом существующих записей.
// Для сегодняшней даты отбрасываются уже начавшиеся слоты, для прошедшей даты список пуст
func FreeSlots(business *domain.Business, date time.Time, appointments []*domain.Appointment, now time.Time) ([]types.TimeString, error) {
	candidates, err := GenerateSlots(business, date)
	if err != nil {
		return nil, err
	}

	free := Resolve(candidates, OccupiedTimes(appointments))

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := domain.DateOnly(now)
	switch {
	case day.Before(today):
		return []types.TimeString{}, nil
	case day.Equal(today):
		return FilterAfter(free, types.NewTimeString(now)), nil
	default:
		return free, nil
	}
}
