package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	appointmentRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/appointment"
	businessRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/scheduling"
	"github.com/DennizCann/RandevuApp-sub000/pkg/metrics"
)

const reservationKind = "booking"

// UseCase use case для создания записи клиента
type UseCase struct {
	appointments AppointmentStore
	businesses   BusinessDirectory
	observer     ReservationObserver
	timeProvider TimeProvider
	location     *time.Location
	storeTimeout time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location часовой пояс бизнеса, storeTimeout ограничение на каждый вызов хранилища (0 без ограничения)
func NewUseCase(
	appointments AppointmentStore,
	businesses BusinessDirectory,
	observer ReservationObserver,
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
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		location:     location,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка занятости и вставка выполняются одной атомарной операцией хранилища,
// предварительного чтения занятых слотов нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, business=%s, date=%s, time=%s",
		req.CustomerID, req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.observe(metrics.OutcomeInvalid)
		return nil, err
	}

	// 2. Получаем бизнес
	business, err := uc.getBusiness(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем, что время это будущий слот бизнеса
	now := uc.timeProvider.Now().In(uc.location)
	if err := uc.checkBookable(business, req, now); err != nil {
		uc.observe(metrics.OutcomeInvalid)
		return nil, err
	}

	// 4. Атомарно занимаем слот
	appt := &domain.Appointment{
		BusinessID:      req.BusinessID,
		CustomerID:      req.CustomerID,
		AppointmentDate: domain.DateOnly(req.Date),
		StartTime:       req.StartTime,
		Status:          domain.StatusPending,
		Note:            req.Note,
		IdempotencyKey:  req.IdempotencyKey,
	}

	created, err := uc.insert(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			uc.logger.Warn("CreateAppointment: slot %s %s of business=%s is already taken",
				req.Date.Format(domain.DateFormat), req.StartTime, req.BusinessID)
			uc.observe(metrics.OutcomeConflict)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("CreateAppointment: failed to reserve slot for business=%s: %v", req.BusinessID, err)
		uc.observe(metrics.OutcomeStoreFailure)
		return nil, fmt.Errorf("%w: reserve slot: %v", ErrStoreFailure, err)
	}

	uc.observe(metrics.OutcomeCreated)
	uc.logger.Info("CreateAppointment: created appointment id=%s for customer=%s", created.ID, created.CustomerID)

	return &Response{
		ID:              created.ID,
		BusinessID:      created.BusinessID,
		CustomerID:      created.CustomerID,
		AppointmentDate: created.AppointmentDate,
		StartTime:       created.StartTime,
		Status:          string(created.Status),
		Note:            created.Note,
		CreatedAt:       created.CreatedAt,
	}, nil
}

func (uc *UseCase) getBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	storeCtx, cancel := uc.withTimeout(ctx)
	defer cancel()

	business, err := uc.businesses.GetByID(storeCtx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%s: %v", businessID, err)
		uc.observe(metrics.OutcomeStoreFailure)
		return nil, fmt.Errorf("%w: get business: %v", ErrStoreFailure, err)
	}
	return business, nil
}

func (uc *UseCase) checkBookable(business *domain.Business, req *Request, now time.Time) error {
	err := scheduling.CheckBookable(business, req.Date, req.StartTime, now)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidConfiguration):
		uc.logger.Error("CreateAppointment: business id=%s has invalid working hours: %v", business.ID, err)
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	case errors.Is(err, scheduling.ErrSlotInPast):
		uc.logger.Warn("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrNotInFuture, err)
	default:
		uc.logger.Warn("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
}

func (uc *UseCase) insert(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	storeCtx, cancel := uc.withTimeout(ctx)
	defer cancel()
	return uc.appointments.InsertIfAbsent(storeCtx, appt)
}

func (uc *UseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.storeTimeout)
}

func (uc *UseCase) observe(outcome string) {
	if uc.observer != nil {
		uc.observer.ObserveReservation(reservationKind, outcome)
	}
}
