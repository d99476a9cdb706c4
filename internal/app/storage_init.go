package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
	"github.com/jcavendish/shop/internal/storage/memory"
	"github.com/jcavendish/shop/internal/storage/postgres"
)

// Поддерживаемые драйверы хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Dependencies — репозитории приложения и опциональное postgres-подключение.
// Store равен nil при in-memory хранилище.
type Dependencies struct {
	Customers domain.CustomerRepository
	Products  domain.ProductRepository
	Orders    domain.OrderRepository
	Store     *postgres.Store
	logger    *log.Entry
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close() {
	if d == nil || d.Store == nil {
		return
	}
	if err := d.Store.Close(); err != nil {
		d.logger.WithError(err).Warn("failed to close postgres store")
	}
}

// initStorage собирает репозитории под выбранный драйвер.
func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	switch cfg.StorageDriver {
	case "", StorageDriverMemory:
		logger.Info("using in-memory storage")
		return &Dependencies{
			Customers: memory.NewCustomerRepository(),
			Products:  memory.NewProductRepository(),
			Orders:    memory.NewOrderRepository(),
			logger:    logger,
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres storage requires a DSN")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("ensure postgres schema: %w", err)
			}
		}
		logger.Info("using postgres storage")
		return &Dependencies{
			Customers: postgres.NewCustomerRepository(store),
			Products:  postgres.NewProductRepository(store),
			Orders:    postgres.NewOrderRepository(store),
			Store:     store,
			logger:    logger,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
