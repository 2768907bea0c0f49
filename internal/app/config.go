package app

import "os"

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	OpsAddr     string
	PostgresDSN string
}

// DefaultConfig возвращает базовые адреса для HTTP API и ops-эндпоинтов.
func DefaultConfig() Config {
	return Config{
		HTTPAddr: ":8080",
		OpsAddr:  ":9090",
	}
}

// ConfigFromEnv читает конфигурацию из переменных окружения,
// подставляя значения по умолчанию для отсутствующих.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if addr := os.Getenv("COMMERCE_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if addr := os.Getenv("COMMERCE_OPS_ADDR"); addr != "" {
		cfg.OpsAddr = addr
	}
	cfg.PostgresDSN = os.Getenv("COMMERCE_POSTGRES_DSN")
	return cfg
}
