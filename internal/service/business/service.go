package business

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	businessRepo "github.com/DennizCann/RandevuApp-sub000/internal/infra/storage/business"
	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// Service сервис для работы с бизнесами и их рабочими часами
type Service struct {
	directory    BusinessDirectory
	storeTimeout time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(directory BusinessDirectory, storeTimeout time.Duration, logger Logger) *Service {
	return &Service{
		directory:    directory,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Create регистрирует бизнес; владельцем становится вызывающий пользователь
func (s *Service) Create(ctx context.Context, req *models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Create: creating business %q for owner=%s", req.Name, req.OwnerID)

	if strings.TrimSpace(req.OwnerID) == "" || strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: owner and name are required")
		return nil, fmt.Errorf("%w: owner and name are required", ErrInvalidInput)
	}

	b, err := buildWorkingHours(req.WorkingDays, req.OpeningTime, req.ClosingTime, req.SlotDurationMinutes)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	b.OwnerID = req.OwnerID
	b.Name = req.Name

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	created, err := s.directory.Create(ctx, b)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessExists) {
			return nil, ErrBusinessExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrStoreFailure, err)
	}

	s.logger.Info("Create: successfully created business id=%s", created.ID)
	return models.FromDomainBusiness(created), nil
}

// GetBusiness получает бизнес с рабочими часами
func (s *Service) GetBusiness(ctx context.Context, id string) (*models.BusinessResponse, error) {
	s.logger.Info("GetBusiness: fetching business id=%s", id)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b, err := s.directory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: business id=%s not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: repository error for business id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetBusiness - repository error: %v", ErrStoreFailure, err)
	}

	return models.FromDomainBusiness(b), nil
}

// UpdateWorkingHours заменяет рабочие дни и часы. Доступно только владельцу.
// Некорректная конфигурация отклоняется целиком, ничего не исправляется молча
func (s *Service) UpdateWorkingHours(ctx context.Context, id string, req *models.UpdateWorkingHoursRequest) (*models.BusinessResponse, error) {
	s.logger.Info("UpdateWorkingHours: business id=%s by user=%s", id, req.UserID)

	next, err := buildWorkingHours(req.WorkingDays, req.OpeningTime, req.ClosingTime, req.SlotDurationMinutes)
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	current, err := s.directory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("UpdateWorkingHours: business id=%s not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for business id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrStoreFailure, err)
	}

	if current.OwnerID != req.UserID {
		s.logger.Warn("UpdateWorkingHours: user=%s is not the owner of business=%s", req.UserID, id)
		return nil, ErrAccessDenied
	}

	next.ID = current.ID
	next.OwnerID = current.OwnerID
	next.Name = current.Name

	updated, err := s.directory.UpdateWorkingHours(ctx, next)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for business id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrStoreFailure, err)
	}
	updated.CreatedAt = current.CreatedAt

	s.logger.Info("UpdateWorkingHours: business id=%s now works %s-%s every %d min",
		id, updated.OpeningTime, updated.ClosingTime, updated.SlotDurationMinutes)
	return models.FromDomainBusiness(updated), nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// buildWorkingHours собирает и валидирует рабочие часы из запроса
func buildWorkingHours(days []string, opening, closing string, slotMinutes int) (*domain.Business, error) {
	weekdays, err := models.ParseWeekdays(days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	openTime, err := types.NewTimeStringFromString(opening)
	if err != nil {
		return nil, fmt.Errorf("%w: openingTime: %v", ErrInvalidConfiguration, err)
	}
	closeTime, err := types.NewTimeStringFromString(closing)
	if err != nil {
		return nil, fmt.Errorf("%w: closingTime: %v", ErrInvalidConfiguration, err)
	}

	if slotMinutes < domain.MinSlotDurationMinutes || slotMinutes > domain.MaxSlotDurationMinutes {
		return nil, fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidConfiguration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	b := &domain.Business{
		WorkingDays:         weekdays,
		OpeningTime:         openTime,
		ClosingTime:         closeTime,
		SlotDurationMinutes: slotMinutes,
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	return b, nil
}
