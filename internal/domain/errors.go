package domain

import "errors"

var (
	// ErrInvalidConfiguration некорректные рабочие часы (время не парсится, открытие >= закрытия, длительность слота <= 0)
	ErrInvalidConfiguration = errors.New("domain: invalid working hours configuration")

	// ErrInvalidTransition смена статуса вне таблицы жизненного цикла
	ErrInvalidTransition = errors.New("domain: invalid status transition")
)
