package get_available_slots

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	BusinessID string    // ID бизнеса
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date       time.Time     // Дата, на которую запрашивались слоты
	BusinessID string        // ID бизнеса
	Slots      []domain.Slot // Свободные слоты по возрастанию времени
}
