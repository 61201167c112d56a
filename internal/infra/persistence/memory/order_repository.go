package memory

import (
	"context"
	"sort"
	"sync"

	domorder "example.com/order-management/internal/domain/order"
)

// OrderRepository keeps orders in process memory. Ids come from a sequence
// and are never reused after a delete.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]domorder.Order
	nextID int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[int64]domorder.Order),
		nextID: 1,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = *o
	return o, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; !ok {
		return nil, domorder.ErrOrderNotFound
	}
	r.orders[o.ID] = *o
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return domorder.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domorder.ErrOrderNotFound
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	return r.filter(func(domorder.Order) bool { return true }), nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domorder.Order, error) {
	return r.filter(func(o domorder.Order) bool { return o.CustomerID == customerID }), nil
}

func (r *OrderRepository) filter(keep func(domorder.Order) bool) []*domorder.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domorder.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if !keep(o) {
			continue
		}
		cloned := o
		result = append(result, &cloned)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
