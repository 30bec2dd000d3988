package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business: business not found")

	// ErrBusinessExists возвращается при повторном создании бизнеса
	ErrBusinessExists = errors.New("business: business already exists")

	// ErrInvalidConfiguration возвращается при некорректных рабочих часах
	ErrInvalidConfiguration = errors.New("business: invalid working hours configuration")

	// ErrAccessDenied возвращается, когда пользователь не владелец бизнеса
	ErrAccessDenied = errors.New("business: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("business: invalid input data")

	// ErrStoreFailure возвращается при сбое хранилища
	ErrStoreFailure = errors.New("business: store failure")
)
