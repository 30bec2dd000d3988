package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
)

// BusinessDirectory справочник бизнесов в памяти процесса
type BusinessDirectory struct {
	mu         sync.RWMutex
	businesses map[string]*domain.Business
	now        func() time.Time
}

func NewBusinessDirectory() *BusinessDirectory {
	return &BusinessDirectory{
		businesses: make(map[string]*domain.Business),
		now:        time.Now,
	}
}

func (d *BusinessDirectory) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	created := cloneBusiness(b)
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if _, exists := d.businesses[created.ID]; exists {
		return nil, business.ErrBusinessExists
	}

	now := d.now()
	created.CreatedAt = now
	created.UpdatedAt = now
	d.businesses[created.ID] = created

	return cloneBusiness(created), nil
}

func (d *BusinessDirectory) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	b, ok := d.businesses[id]
	if !ok {
		return nil, business.ErrBusinessNotFound
	}
	return cloneBusiness(b), nil
}

func (d *BusinessDirectory) UpdateWorkingHours(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.businesses[b.ID]
	if !ok {
		return nil, business.ErrBusinessNotFound
	}

	current.WorkingDays = append([]time.Weekday(nil), b.WorkingDays...)
	current.OpeningTime = b.OpeningTime
	current.ClosingTime = b.ClosingTime
	current.SlotDurationMinutes = b.SlotDurationMinutes
	current.UpdatedAt = d.now()

	return cloneBusiness(current), nil
}

func cloneBusiness(b *domain.Business) *domain.Business {
	c := *b
	c.WorkingDays = append([]time.Weekday(nil), b.WorkingDays...)
	return &c
}
