package block_slot

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

const reservationKind = "block"

// UseCase use case для закрытия слота бизнесом
type UseCase struct {
	appointments AppointmentStore
	businesses   BusinessDirectory
	observer     ReservationObserver
	timeProvider TimeProvider
	location     *time.Location
	storeTimeout time.Duration
	logger       Logger
}

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

// Execute создает запись BLOCKED без клиента через ту же атомарную вставку, что и бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockSlot: user=%s, business=%s, date=%s, time=%s",
		req.UserID, req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockSlot: validation failed: %v", err)
		uc.observe(metrics.OutcomeInvalid)
		return nil, err
	}

	storeCtx, cancel := uc.withTimeout(ctx)
	business, err := uc.businesses.GetByID(storeCtx, req.BusinessID)
	cancel()
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("BlockSlot: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("BlockSlot: failed to get business id=%s: %v", req.BusinessID, err)
		uc.observe(metrics.OutcomeStoreFailure)
		return nil, fmt.Errorf("%w: get business: %v", ErrStoreFailure, err)
	}

	// Закрывать слоты может только владелец
	if req.UserID == "" || business.OwnerID != req.UserID {
		uc.logger.Warn("BlockSlot: user=%s is not the owner of business=%s", req.UserID, req.BusinessID)
		uc.observe(metrics.OutcomeInvalid)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now().In(uc.location)
	if err := scheduling.CheckBookable(business, req.Date, req.StartTime, now); err != nil {
		uc.observe(metrics.OutcomeInvalid)
		switch {
		case errors.Is(err, domain.ErrInvalidConfiguration):
			uc.logger.Error("BlockSlot: business id=%s has invalid working hours: %v", business.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		case errors.Is(err, scheduling.ErrSlotInPast):
			uc.logger.Warn("BlockSlot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNotInFuture, err)
		default:
			uc.logger.Warn("BlockSlot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}
	}

	storeCtx, cancel = uc.withTimeout(ctx)
	defer cancel()

	created, err := uc.appointments.InsertIfAbsent(storeCtx, &domain.Appointment{
		BusinessID:      req.BusinessID,
		AppointmentDate: domain.DateOnly(req.Date),
		StartTime:       req.StartTime,
		Status:          domain.StatusBlocked,
		Note:            req.Reason,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			uc.logger.Warn("BlockSlot: slot %s %s of business=%s is already occupied",
				req.Date.Format(domain.DateFormat), req.StartTime, req.BusinessID)
			uc.observe(metrics.OutcomeConflict)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("BlockSlot: failed to block slot for business=%s: %v", req.BusinessID, err)
		uc.observe(metrics.OutcomeStoreFailure)
		return nil, fmt.Errorf("%w: block slot: %v", ErrStoreFailure, err)
	}

	uc.observe(metrics.OutcomeCreated)
	uc.logger.Info("BlockSlot: created block id=%s for business=%s", created.ID, created.BusinessID)

	return &Response{
		ID:              created.ID,
		BusinessID:      created.BusinessID,
		AppointmentDate: created.AppointmentDate,
		StartTime:       created.StartTime,
		Status:          string(created.Status),
		Reason:          created.Note,
		CreatedAt:       created.CreatedAt,
	}, nil
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
