package domain

import "time"

// Product представляет товар каталога.
type Product struct {
	ID int64 `json:"id"`
	// Name — обязательное название, 1–100 символов.
	Name string `json:"name"`
	// Description опционально и не ограничено по длине.
	Description *string `json:"description"`
	// Price лежит в [0, MaxPrice].
	Price float64 `json:"price"`
	// Stock — неотрицательный складской остаток.
	Stock int64 `json:"stock"`
	// ProviderID — null либо положительная ссылка на поставщика;
	// существование поставщика процессом не проверяется.
	ProviderID *int64    `json:"provider_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaxProductNameLen — предел длины названия товара.
const MaxProductNameLen = 100
