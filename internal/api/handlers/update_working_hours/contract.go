package update_working_hours

import (
	"context"

	"github.com/DennizCann/RandevuApp-sub000/internal/service/business/models"
)

type BusinessService interface {
	UpdateWorkingHours(ctx context.Context, id string, req *models.UpdateWorkingHoursRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
