package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domitem "example.com/order-management/internal/domain/item"
)

type ItemRepository struct {
	db DB
}

func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *domitem.Item) (*domitem.Item, error) {
	query := `
		INSERT INTO items (order_id, product_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, i.OrderID, i.ProductID, i.Name, i.Quantity, i.Price).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domitem.ErrUnknownOrder
		}
		return nil, err
	}
	i.ID = id
	return i, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domitem.Item) (*domitem.Item, error) {
	query := `
		UPDATE items
		SET order_id = $1, product_id = $2, name = $3, quantity = $4, price = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, i.OrderID, i.ProductID, i.Name, i.Quantity, i.Price, i.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domitem.ErrUnknownOrder
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domitem.ErrItemNotFound
	}
	return i, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domitem.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domitem.Item, error) {
	query := `
		SELECT id, order_id, product_id, name, quantity, price
		FROM items
		WHERE id = $1
	`
	i := &domitem.Item{}
	err := r.db.QueryRow(ctx, query, id).Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Quantity, &i.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domitem.ErrItemNotFound
		}
		return nil, err
	}
	return i, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*domitem.Item, error) {
	query := `
		SELECT id, order_id, product_id, name, quantity, price
		FROM items
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domitem.Item, 0)
	for rows.Next() {
		i := &domitem.Item{}
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Quantity, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
