package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на запись или бизнес
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrInvalidTransition возвращается при переходе статуса вне жизненного цикла
	ErrInvalidTransition = errors.New("appointments: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrStoreFailure возвращается при сбое или таймауте хранилища
	ErrStoreFailure = errors.New("appointments: store failure")
)
