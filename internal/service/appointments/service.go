package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	appointmentRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/appointment"
	businessRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/appointments/models"
)

// Сколько раз перечитываем запись, если статус поменялся между чтением и записью
const maxStatusAttempts = 3

// Service сервис жизненного цикла записей
type Service struct {
	store        AppointmentStore
	businesses   BusinessDirectory
	storeTimeout time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store AppointmentStore, businesses BusinessDirectory, storeTimeout time.Duration, logger Logger) *Service {
	return &Service{
		store:        store,
		businesses:   businesses,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// GetByID получает запись по ID.
// Видеть запись могут клиент, который ее создал, и владелец бизнеса
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, userID)

	appt, err := s.get(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: store error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrStoreFailure, err)
	}

	if err := s.checkUserAccess(ctx, appt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByCustomer история записей клиента
func (s *Service) ListByCustomer(ctx context.Context, customerID string) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByCustomer: fetching appointments for customer=%s", customerID)

	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.store.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: store error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - store error: %v", ErrStoreFailure, err)
	}

	s.logger.Info("ListByCustomer: fetched %d appointments for customer=%s", len(list), customerID)
	return models.FromDomainAppointmentList(list), nil
}

// ListByBusinessAndDate записи бизнеса на дату, включая блокировки. Только для владельца
func (s *Service) ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time, userID string) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByBusinessAndDate: business=%s, date=%s, user=%s", businessID, date.Format(domain.DateFormat), userID)

	if strings.TrimSpace(businessID) == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: businessID and date are required", ErrInvalidInput)
	}

	if err := s.checkOwnerAccess(ctx, businessID, userID); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.store.ListByBusinessAndDate(ctx, businessID, date)
	if err != nil {
		s.logger.Error("ListByBusinessAndDate: store error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListByBusinessAndDate - store error: %v", ErrStoreFailure, err)
	}

	return models.FromDomainAppointmentList(list), nil
}

// UpdateStatus переводит запись в новый статус по таблице жизненного цикла.
// Подтверждает и завершает запись только владелец бизнеса, отменить могут клиент и владелец.
// Переход в CANCELLED выполняется удалением записи, слот освобождается. Поэтому после отмены
// запись не найти: следующий UpdateStatus по ней вернет ErrAppointmentNotFound, а не ErrInvalidTransition
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%s to status=%s by user=%s", id, req.Status, req.UserID)

	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for attempt := 1; ; attempt++ {
		current, err := s.get(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
				return nil, ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: store error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - store error: %v", ErrStoreFailure, err)
		}

		if attempt == 1 {
			if err := s.checkStatusAccess(ctx, current, target, req.UserID); err != nil {
				s.logger.Warn("UpdateStatus: access denied for user=%s to appointment id=%s", req.UserID, id)
				return nil, err
			}
		}

		if err := domain.ValidateTransition(current.Status, target); err != nil {
			s.logger.Warn("UpdateStatus: appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		updated, err := s.apply(ctx, current, target)
		switch {
		case err == nil:
			s.logger.Info("UpdateStatus: appointment id=%s moved %s -> %s", id, current.Status, target)
			return models.FromDomainAppointment(updated), nil
		case errors.Is(err, appointmentRepo.ErrStatusConflict) && attempt < maxStatusAttempts:
			s.logger.Warn("UpdateStatus: appointment id=%s changed concurrently, retrying", id)
			continue
		case errors.Is(err, appointmentRepo.ErrStatusConflict):
			return nil, fmt.Errorf("%w: appointment id=%s keeps changing concurrently", ErrInvalidTransition, id)
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("UpdateStatus: appointment id=%s disappeared", id)
			return nil, ErrAppointmentNotFound
		default:
			s.logger.Error("UpdateStatus: store error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - store error: %v", ErrStoreFailure, err)
		}
	}
}

// apply записывает переход: CANCELLED удаляет запись, остальное compare-and-set по статусу
func (s *Service) apply(ctx context.Context, current *domain.Appointment, target domain.AppointmentStatus) (*domain.Appointment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if target != domain.StatusCancelled {
		return s.store.UpdateStatus(ctx, current.ID, current.Status, target)
	}

	deleted, err := s.store.Delete(ctx, current.ID, current.Status)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	deleted.Status = domain.StatusCancelled
	return deleted, nil
}

// Cancel отменяет запись клиента удалением. Идемпотентно: отсутствующая запись не ошибка.
// Отменить могут клиент и владелец бизнеса.
// Завершенную запись и блокировку отменить нельзя (для блокировки есть Unblock)
func (s *Service) Cancel(ctx context.Context, id string, userID string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, userID)

	for attempt := 1; ; attempt++ {
		current, err := s.get(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Info("Cancel: appointment id=%s already absent", id)
				return nil
			}
			s.logger.Error("Cancel: store error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - store error: %v", ErrStoreFailure, err)
		}

		if attempt == 1 {
			if err := s.checkUserAccess(ctx, current, userID); err != nil {
				s.logger.Warn("Cancel: access denied for user=%s to appointment id=%s", userID, id)
				return err
			}
		}

		if err := domain.ValidateTransition(current.Status, domain.StatusCancelled); err != nil {
			s.logger.Warn("Cancel: appointment id=%s cannot be cancelled: %v", id, err)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		_, err = s.apply(ctx, current, domain.StatusCancelled)
		switch {
		case err == nil, errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Info("Cancel: appointment id=%s cancelled, slot released", id)
			return nil
		case errors.Is(err, appointmentRepo.ErrStatusConflict) && attempt < maxStatusAttempts:
			continue
		case errors.Is(err, appointmentRepo.ErrStatusConflict):
			return fmt.Errorf("%w: appointment id=%s keeps changing concurrently", ErrInvalidTransition, id)
		default:
			s.logger.Error("Cancel: store error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - store error: %v", ErrStoreFailure, err)
		}
	}
}

// Unblock снимает блокировку слота удалением записи BLOCKED. Только для владельца бизнеса. Идемпотентно
func (s *Service) Unblock(ctx context.Context, id string, userID string) error {
	s.logger.Info("Unblock: unblocking appointment id=%s by user=%s", id, userID)

	current, err := s.get(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Info("Unblock: appointment id=%s already absent", id)
			return nil
		}
		s.logger.Error("Unblock: store error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Unblock - store error: %v", ErrStoreFailure, err)
	}

	if err := s.checkOwnerAccess(ctx, current.BusinessID, userID); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.store.Delete(ctx, id, domain.StatusBlocked)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusConflict) {
			s.logger.Warn("Unblock: appointment id=%s is not a block", id)
			return fmt.Errorf("%w: appointment id=%s is not blocked", ErrInvalidTransition, id)
		}
		s.logger.Error("Unblock: store error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Unblock - store error: %v", ErrStoreFailure, err)
	}

	s.logger.Info("Unblock: appointment id=%s released", id)
	return nil
}

// checkStatusAccess отмена доступна клиенту и владельцу, остальные переходы только владельцу
func (s *Service) checkStatusAccess(ctx context.Context, appt *domain.Appointment, target domain.AppointmentStatus, userID string) error {
	if target == domain.StatusCancelled {
		return s.checkUserAccess(ctx, appt, userID)
	}
	return s.checkOwnerAccess(ctx, appt.BusinessID, userID)
}

// checkUserAccess пользователь видит свою запись или любую запись своего бизнеса
func (s *Service) checkUserAccess(ctx context.Context, appt *domain.Appointment, userID string) error {
	if userID != "" && appt.CustomerID == userID {
		return nil
	}
	return s.checkOwnerAccess(ctx, appt.BusinessID, userID)
}

// checkOwnerAccess проверяет, что пользователь владелец бизнеса
func (s *Service) checkOwnerAccess(ctx context.Context, businessID string, userID string) error {
	if userID == "" {
		return ErrAccessDenied
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("checkOwnerAccess: business id=%s not found", businessID)
			return ErrAccessDenied
		}
		s.logger.Error("checkOwnerAccess: failed to get business id=%s: %v", businessID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get business: %v", ErrStoreFailure, err)
	}

	if business.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%s is not the owner of business=%s", userID, businessID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.GetByID(ctx, id)
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
