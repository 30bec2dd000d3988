package block_slot

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/api/handlers"
	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	blockSlot "github.com/DennizCann/RandevuApp-sub000/internal/usecase/block_slot"
	"github.com/DennizCann/RandevuApp-sub000/pkg/types"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date      string  `json:"date" validate:"required"`
	StartTime string  `json:"startTime" validate:"required"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"businessId"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	Status          string  `json:"status"`
	Reason          *string `json:"reason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

func (r *BlockSlotRequest) ToUseCaseRequest(userID, businessID string, idempotencyKey *string) (*blockSlot.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &blockSlot.Request{
		UserID:         userID,
		BusinessID:     businessID,
		Date:           date,
		StartTime:      startTime,
		Reason:         r.Reason,
		IdempotencyKey: idempotencyKey,
	}, nil
}

func FromUseCaseResponse(resp *blockSlot.Response) *BlockResponse {
	return &BlockResponse{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
		Reason:          resp.Reason,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
