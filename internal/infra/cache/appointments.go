package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

const keyPrefix = "appointments"

// ErrCacheMiss значения нет в кеше (или кеш выключен)
var ErrCacheMiss = errors.New("cache: miss")

// CachedAppointmentStore кеширует дневные списки записей бизнеса в Redis.
// Кеш только для чтения: занятие слота всегда идет в хранилище, а любая запись
// сбрасывает ключ дня. Ошибки Redis не ломают запрос, идем в хранилище напрямую.
// Клиент nil означает выключенный кеш
type CachedAppointmentStore struct {
	inner  AppointmentStore
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewAppointmentStore оборачивает inner кешем
func NewAppointmentStore(inner AppointmentStore, client *redis.Client, ttl time.Duration, logger Logger) *CachedAppointmentStore {
	return &CachedAppointmentStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func dayKey(businessID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, businessID, date.Format(domain.DateFormat))
}

func (s *CachedAppointmentStore) ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error) {
	key := dayKey(businessID, date)

	var cached []*domain.Appointment
	err := s.get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn("Cache: read %s failed, falling back to store: %v", key, err)
	}

	appts, err := s.inner.ListByBusinessAndDate(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	if err := s.set(ctx, key, appts); err != nil {
		s.logger.Warn("Cache: write %s failed: %v", key, err)
	}
	return appts, nil
}

func (s *CachedAppointmentStore) InsertIfAbsent(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created, err := s.inner.InsertIfAbsent(ctx, appt)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, created)
	return created, nil
}

func (s *CachedAppointmentStore) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	updated, err := s.inner.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated)
	return updated, nil
}

func (s *CachedAppointmentStore) Delete(ctx context.Context, id string, expected ...domain.AppointmentStatus) (*domain.Appointment, error) {
	deleted, err := s.inner.Delete(ctx, id, expected...)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		s.invalidate(ctx, deleted)
	}
	return deleted, nil
}

func (s *CachedAppointmentStore) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.inner.GetByID(ctx, id)
}

func (s *CachedAppointmentStore) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
	return s.inner.ListByCustomer(ctx, customerID)
}

// Close закрывает соединение с Redis, если оно есть
func (s *CachedAppointmentStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *CachedAppointmentStore) invalidate(ctx context.Context, appt *domain.Appointment) {
	if s.client == nil {
		return
	}
	key := dayKey(appt.BusinessID, appt.AppointmentDate)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Cache: failed to invalidate %s: %v", key, err)
	}
}

func (s *CachedAppointmentStore) get(ctx context.Context, key string, dest interface{}) error {
	if s.client == nil {
		return ErrCacheMiss
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

func (s *CachedAppointmentStore) set(ctx context.Context, key string, value interface{}) error {
	if s.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
