package domain

import "errors"

var (
	// ErrNotFound возвращается, если сущность не найдена в хранилище.
	ErrNotFound = errors.New("entity not found")
	// ErrConflict сигнализирует о нарушении уникального ограничения,
	// обнаруженном хранилищем (email клиента, номер заказа).
	ErrConflict = errors.New("unique constraint violated")
)

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict проверяет, является ли ошибка конфликтом уникальности.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
