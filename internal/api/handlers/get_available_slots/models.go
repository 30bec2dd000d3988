package get_available_slots

import (
	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	getAvailableSlots "github.com/DennizCann/RandevuApp-sub000/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BusinessID string         `json:"businessId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slot := SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
		}
		if end, err := s.EndTime(); err == nil {
			slot.EndTime = end.String()
		}
		slots = append(slots, slot)
	}

	return &AvailableSlotsResponse{
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
