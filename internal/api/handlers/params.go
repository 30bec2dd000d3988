package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// IdempotencyKeyHeader заголовок ключа идемпотентности для POST запросов
const IdempotencyKeyHeader = "Idempotency-Key"

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.Parse(domain.DateFormat, value)
}

// IdempotencyKey возвращает ключ из заголовка или nil, если заголовок пуст
func IdempotencyKey(r *http.Request) *string {
	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	if key == "" {
		return nil
	}
	return &key
}
