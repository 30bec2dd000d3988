package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/appointment"
)

// Ключ идемпотентности уникален в пределах бизнеса и клиента (у блокировок клиент пустой)
type idempotencyKey struct {
	businessID string
	customerID string
	key        string
}

func idemKeyOf(a *domain.Appointment) idempotencyKey {
	return idempotencyKey{a.BusinessID, a.CustomerID, *a.IdempotencyKey}
}

// AppointmentStore хранилище записей в памяти процесса.
// Возвращает те же ошибки, что и Postgres-репозиторий
type AppointmentStore struct {
	mu        sync.Mutex
	byID      map[string]*domain.Appointment
	bySlot    map[domain.SlotKey]string
	byIdemKey map[idempotencyKey]string
	now       func() time.Time
}

// NewAppointmentStore создает пустое хранилище
func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{
		byID:      make(map[string]*domain.Appointment),
		bySlot:    make(map[domain.SlotKey]string),
		byIdemKey: make(map[idempotencyKey]string),
		now:       time.Now,
	}
}

// InsertIfAbsent проверяет занятость и вставляет под одной блокировкой
func (s *AppointmentStore) InsertIfAbsent(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := appt.Key()

	if appt.IdempotencyKey != nil {
		if id, ok := s.byIdemKey[idemKeyOf(appt)]; ok {
			existing := s.byID[id]
			if !existing.IsReplayOf(appt) {
				return nil, appointment.ErrSlotConflict
			}
			return clone(existing), nil
		}
	}

	if _, taken := s.bySlot[key]; taken {
		return nil, appointment.ErrSlotConflict
	}

	now := s.now()
	stored := clone(appt)
	stored.ID = uuid.NewString()
	stored.AppointmentDate = domain.DateOnly(appt.AppointmentDate)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.byID[stored.ID] = stored
	if stored.OccupiesSlot() {
		s.bySlot[key] = stored.ID
	}
	if stored.IdempotencyKey != nil {
		s.byIdemKey[idemKeyOf(stored)] = stored.ID
	}

	return clone(stored), nil
}

func (s *AppointmentStore) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.byID[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	return clone(appt), nil
}

func (s *AppointmentStore) ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error) {
	day := date.Format(domain.DateFormat)
	return s.list(ctx, func(a *domain.Appointment) bool {
		return a.BusinessID == businessID && a.AppointmentDate.Format(domain.DateFormat) == day
	}, func(a, b *domain.Appointment) bool {
		return a.StartTime < b.StartTime
	})
}

func (s *AppointmentStore) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
	return s.list(ctx, func(a *domain.Appointment) bool {
		return customerID != "" && a.CustomerID == customerID
	}, func(a, b *domain.Appointment) bool {
		if !a.AppointmentDate.Equal(b.AppointmentDate) {
			return a.AppointmentDate.After(b.AppointmentDate)
		}
		return a.StartTime > b.StartTime
	})
}

// UpdateStatus compare-and-set по текущему статусу
func (s *AppointmentStore) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.byID[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	if appt.Status != from {
		return nil, appointment.ErrStatusConflict
	}

	appt.Status = to
	appt.UpdatedAt = s.now()
	if !appt.OccupiesSlot() {
		delete(s.bySlot, appt.Key())
	}

	return clone(appt), nil
}

// Delete идемпотентное удаление, опционально только из статусов expected
func (s *AppointmentStore) Delete(ctx context.Context, id string, expected ...domain.AppointmentStatus) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	if len(expected) > 0 && !containsStatus(expected, appt.Status) {
		return nil, appointment.ErrStatusConflict
	}

	delete(s.byID, id)
	if s.bySlot[appt.Key()] == id {
		delete(s.bySlot, appt.Key())
	}
	if appt.IdempotencyKey != nil {
		delete(s.byIdemKey, idemKeyOf(appt))
	}

	return clone(appt), nil
}

func (s *AppointmentStore) list(
	ctx context.Context,
	match func(*domain.Appointment) bool,
	less func(a, b *domain.Appointment) bool,
) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range s.byID {
		if match(a) {
			result = append(result, clone(a))
		}
	}
	sort.Slice(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result, nil
}

func containsStatus(list []domain.AppointmentStatus, st domain.AppointmentStatus) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}

func clone(a *domain.Appointment) *domain.Appointment {
	c := *a
	if a.Note != nil {
		note := *a.Note
		c.Note = &note
	}
	if a.IdempotencyKey != nil {
		key := *a.IdempotencyKey
		c.IdempotencyKey = &key
	}
	return &c
}
