package domain

// Ограничения для валидации бизнеса
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxNoteLength          = 500
	MaxIdempotencyKeyLen   = 128
)

// Форматы времени и даты
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы записей, которые занимают слот
// Используется для построения занятого времени и частичного уникального индекса
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusBlocked,
}
