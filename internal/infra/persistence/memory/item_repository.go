package memory

import (
	"context"
	"sort"
	"sync"

	domitem "example.com/order-management/internal/domain/item"
)

type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]domitem.Item
	nextID int64
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:  make(map[int64]domitem.Item),
		nextID: 1,
	}
}

func (r *ItemRepository) Create(ctx context.Context, i *domitem.Item) (*domitem.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i.ID = r.nextID
	r.nextID++
	r.items[i.ID] = *i
	return i, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domitem.Item) (*domitem.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[i.ID]; !ok {
		return nil, domitem.ErrItemNotFound
	}
	r.items[i.ID] = *i
	return i, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domitem.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domitem.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.items[id]
	if !ok {
		return nil, domitem.ErrItemNotFound
	}
	return &i, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*domitem.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domitem.Item, 0, len(r.items))
	for _, i := range r.items {
		cloned := i
		result = append(result, &cloned)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].ID < result[b].ID })
	return result, nil
}
