package block_slot

import (
	"fmt"
	"strings"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BusinessID) == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxNoteLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.IdempotencyKey != nil {
		key := *req.IdempotencyKey
		if key == "" || len(key) > domain.MaxIdempotencyKeyLen {
			return fmt.Errorf("%w: idempotency key must be 1..%d characters", ErrInvalidInput, domain.MaxIdempotencyKeyLen)
		}
	}

	return nil
}
