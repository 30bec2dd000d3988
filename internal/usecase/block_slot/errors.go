package block_slot

import "errors"

var (
	ErrBusinessNotFound     = errors.New("block_slot: business not found")
	ErrAccessDenied         = errors.New("block_slot: access denied")
	ErrInvalidConfiguration = errors.New("block_slot: invalid working hours configuration")
	ErrInvalidTimeSlot      = errors.New("block_slot: invalid time slot")
	ErrNotInFuture          = errors.New("block_slot: slot is not in the future")
	ErrSlotUnavailable      = errors.New("block_slot: slot is not available")
	ErrStoreFailure         = errors.New("block_slot: store failure")
	ErrInvalidInput         = errors.New("block_slot: invalid input data")
)
