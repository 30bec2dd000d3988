package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	businessRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/scheduling"
)

// UseCase use case для получения свободных слотов бизнеса на дату
type UseCase struct {
	appointments AppointmentStore
	businesses   BusinessDirectory
	timeProvider TimeProvider
	location     *time.Location
	storeTimeout time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentStore,
	businesses BusinessDirectory,
	location *time.Location,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		appointments: appointments,
		businesses:   businesses,
		timeProvider: &RealTimeProvider{},
		location:     location,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Результат может быть слегка устаревшим: окончательная проверка происходит при вставке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, date=%s", req.BusinessID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес
	storeCtx, cancel := uc.withTimeout(ctx)
	business, err := uc.businesses.GetByID(storeCtx, req.BusinessID)
	cancel()
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: get business: %v", ErrStoreFailure, err)
	}

	response := &Response{
		Date:       domain.DateOnly(req.Date),
		BusinessID: business.ID,
		Slots:      []domain.Slot{},
	}

	// 3. Генерируем сетку слотов; нерабочий день дает пустой список без похода в хранилище
	candidates, err := scheduling.GenerateSlots(business, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: business id=%s has invalid working hours: %v", business.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: business id=%s is closed on %s", business.ID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Получаем записи на дату
	storeCtx, cancel = uc.withTimeout(ctx)
	appointments, err := uc.appointments.ListByBusinessAndDate(storeCtx, business.ID, req.Date)
	cancel()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments for business=%s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: list appointments: %v", ErrStoreFailure, err)
	}

	// 5. Вычитаем занятое время и уже начавшиеся слоты
	now := uc.timeProvider.Now().In(uc.location)
	free, err := scheduling.FreeSlots(business, req.Date, appointments, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	for _, start := range free {
		response.Slots = append(response.Slots, domain.Slot{
			StartTime:       start,
			DurationMinutes: business.SlotDurationMinutes,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots free for business=%s, date=%s",
		len(response.Slots), len(candidates), business.ID, req.Date.Format(domain.DateFormat))

	return response, nil
}

func (uc *UseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.storeTimeout)
}
