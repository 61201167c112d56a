package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	Update(ctx context.Context, o *Order) (*Order, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*Order, error)
}
