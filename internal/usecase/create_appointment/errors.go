package create_appointment

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_appointment: business not found")

	// ErrInvalidConfiguration возвращается, когда рабочие часы бизнеса некорректны
	ErrInvalidConfiguration = errors.New("create_appointment: invalid working hours configuration")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов на эту дату
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrNotInFuture возвращается, когда слот уже начался или прошел
	ErrNotInFuture = errors.New("create_appointment: slot is not in the future")

	// ErrSlotUnavailable возвращается, когда слот уже занят (в том числе проигранная гонка)
	ErrSlotUnavailable = errors.New("create_appointment: slot is not available")

	// ErrStoreFailure возвращается при сбое или таймауте хранилища
	ErrStoreFailure = errors.New("create_appointment: store failure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")
)
