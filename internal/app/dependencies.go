package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
	"github.com/vladislavdragonenkov/commerce-api/internal/storage/memory"
	"github.com/vladislavdragonenkov/commerce-api/internal/storage/postgres"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Clients  domain.ClientRepository
	Products domain.ProductRepository
	Orders   domain.OrderRepository
	Store    *postgres.Store
	Logger   *log.Entry
}

// NewDependencies создаёт зависимости приложения. При пустом DSN
// используются in-memory репозитории: удобно для локальной разработки
// и тестов, данные живут до перезапуска процесса.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if cfg.PostgresDSN == "" {
		logger.Info("postgres DSN is not set, falling back to in-memory storage")
		return &Dependencies{
			Clients:  memory.NewClientRepository(),
			Products: memory.NewProductRepository(),
			Orders:   memory.NewOrderRepository(),
			Logger:   logger,
		}, nil
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}

	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	logger.Info("postgres storage initialized")
	return &Dependencies{
		Clients:  postgres.NewClientRepository(store),
		Products: postgres.NewProductRepository(store),
		Orders:   postgres.NewOrderRepository(store),
		Store:    store,
		Logger:   logger,
	}, nil
}

// Close освобождает ресурсы зависимостей.
func (d *Dependencies) Close() error {
	if d == nil || d.Store == nil {
		return nil
	}
	return d.Store.Close()
}
