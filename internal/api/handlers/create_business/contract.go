package create_business

import (
	"context"

	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
)

type BusinessService interface {
	Create(ctx context.Context, req *models.CreateBusinessRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
