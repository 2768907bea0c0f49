package domain

import "time"

// Client представляет покупателя с контактными данными.
type Client struct {
	// ID назначается хранилищем при вставке.
	ID int64 `json:"id"`
	// Name — обязательное имя, 1–100 символов после обрезки пробелов.
	Name string `json:"name"`
	// Email уникален среди всех клиентов; уникальность обеспечивает хранилище.
	Email string `json:"email"`
	// Phone опционален, до 30 символов.
	Phone *string `json:"phone"`
	// Address опционален, до 255 символов.
	Address *string `json:"address"`
	// CreatedAt фиксирует момент создания записи.
	CreatedAt time.Time `json:"created_at"`
}

const (
	// MaxClientNameLen — предел длины имени клиента.
	MaxClientNameLen = 100
	// MaxPhoneLen — предел длины телефона.
	MaxPhoneLen = 30
	// MaxAddressLen — предел длины адресных полей.
	MaxAddressLen = 255
)
