package domain

import (
	"math"
	"strings"
)

const (
	// MaxPrice — верхняя граница цены товара и позиций заказа.
	MaxPrice = 999999.99
	// MaxEmailLen — максимальная длина email клиента.
	MaxEmailLen = 150
)

// IsNonEmptyString проверяет, что строка после обрезки пробелов непуста
// и не длиннее maxLen символов.
func IsNonEmptyString(s string, maxLen int) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) > 0 && len(trimmed) <= maxLen
}

// IsEmail проверяет минимальную форму адреса local@domain.tld:
// без пробелов, ровно один @, хотя бы одна точка после @.
func IsEmail(s string) bool {
	v := strings.TrimSpace(s)
	if len(v) == 0 || len(v) > MaxEmailLen {
		return false
	}
	if strings.ContainsAny(v, " \t\n\r") {
		return false
	}
	at := strings.Index(v, "@")
	if at <= 0 || at != strings.LastIndex(v, "@") {
		return false
	}
	domainPart := v[at+1:]
	dot := strings.Index(domainPart, ".")
	// Точка должна разделять непустые части домена.
	return dot > 0 && dot < len(domainPart)-1
}

// IsOptionalBoundedString принимает nil или строку длиной не более maxLen.
func IsOptionalBoundedString(s *string, maxLen int) bool {
	if s == nil {
		return true
	}
	return len(strings.TrimSpace(*s)) <= maxLen
}

// IsPrice проверяет, что значение конечно и лежит в [0, MaxPrice].
func IsPrice(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= 0 && v <= MaxPrice
}

// IsNonNegativeInt проверяет целое значение >= 0 (складские остатки).
func IsNonNegativeInt(n int64) bool {
	return n >= 0
}

// IsPositiveIntOrNull принимает nil или целое значение >= 1 (provider_id).
func IsPositiveIntOrNull(n *int64) bool {
	return n == nil || *n >= 1
}

// IsCurrencyCode проверяет трёхбуквенный код валюты в духе ISO 4217.
func IsCurrencyCode(s string) bool {
	v := strings.ToUpper(strings.TrimSpace(s))
	if len(v) != 3 {
		return false
	}
	for _, r := range v {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
