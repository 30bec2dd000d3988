package create_appointment

import (
	"fmt"
	"strings"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BusinessID) == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.IdempotencyKey != nil {
		key := *req.IdempotencyKey
		if key == "" || len(key) > domain.MaxIdempotencyKeyLen {
			return fmt.Errorf("%w: idempotency key must be 1..%d characters", ErrInvalidInput, domain.MaxIdempotencyKeyLen)
		}
	}

	return nil
}
