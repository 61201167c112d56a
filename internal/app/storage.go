package app

import (
	"context"
	"fmt"

	domitem "example.com/order-management/internal/domain/item"
	domorder "example.com/order-management/internal/domain/order"
	"example.com/order-management/internal/infra/persistence/memory"
	"example.com/order-management/internal/infra/persistence/mysql"
	"example.com/order-management/internal/infra/persistence/postgres"
)

// Storage is an opened store with its repositories.
type Storage struct {
	Orders domorder.Repository
	Items  domitem.Repository
	ping   func(ctx context.Context) error
	close  func() error
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Storage) Close() error {
	return s.close()
}

// OpenStorage connects the configured driver and makes sure the schema exists.
func OpenStorage(ctx context.Context, cfg Config) (*Storage, error) {
	switch cfg.DBDriver {
	case DriverMemory, "":
		store := memory.NewStore()
		return &Storage{Orders: store.Orders, Items: store.Items, ping: store.Ping, close: store.Close}, nil

	case DriverMySQL:
		store, err := mysql.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return &Storage{
			Orders: mysql.NewOrderRepository(store.DB()),
			Items:  mysql.NewItemRepository(store.DB()),
			ping:   store.Ping,
			close:  store.Close,
		}, nil

	case DriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return &Storage{
			Orders: postgres.NewOrderRepository(store.DB()),
			Items:  postgres.NewItemRepository(store.DB()),
			ping:   store.Ping,
			close:  store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}
