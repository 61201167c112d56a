package memory

import "context"

// Store bundles the in-memory repositories so it can stand in for a database-backed store.
type Store struct {
	Orders *OrderRepository
	Items  *ItemRepository
}

func NewStore() *Store {
	return &Store{
		Orders: NewOrderRepository(),
		Items:  NewItemRepository(),
	}
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }
