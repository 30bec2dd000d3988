package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("get_available_slots: business not found")

	// ErrInvalidConfiguration возвращается, когда рабочие часы бизнеса некорректны
	ErrInvalidConfiguration = errors.New("get_available_slots: invalid working hours configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStoreFailure возвращается при сбое или таймауте хранилища
	ErrStoreFailure = errors.New("get_available_slots: store failure")
)
