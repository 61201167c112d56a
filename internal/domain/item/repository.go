package item

import "context"

type Repository interface {
	Create(ctx context.Context, i *Item) (*Item, error)
	Update(ctx context.Context, i *Item) (*Item, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
}
