package business

import (
	"context"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// BusinessDirectory интерфейс справочника бизнесов
type BusinessDirectory interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	UpdateWorkingHours(ctx context.Context, b *domain.Business) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
