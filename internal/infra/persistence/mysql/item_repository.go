package mysql

import (
	"context"
	"database/sql"
	"errors"

	domitem "example.com/order-management/internal/domain/item"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *domitem.Item) (*domitem.Item, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO items (order_id, product_id, name, quantity, price)
        VALUES (?, ?, ?, ?, ?)
    `, i.OrderID, i.ProductID, i.Name, i.Quantity, i.Price)
	if err != nil {
		if isMySQLError(err, errNoReferencedRow) {
			return nil, domitem.ErrUnknownOrder
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	i.ID = id
	return i, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domitem.Item) (*domitem.Item, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE items SET order_id = ?, product_id = ?, name = ?, quantity = ?, price = ?
        WHERE id = ?
    `, i.OrderID, i.ProductID, i.Name, i.Quantity, i.Price, i.ID)
	if err != nil {
		if isMySQLError(err, errNoReferencedRow) {
			return nil, domitem.ErrUnknownOrder
		}
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domitem.ErrItemNotFound
	}
	return i, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domitem.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domitem.Item, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, order_id, product_id, name, quantity, price
        FROM items WHERE id = ?
    `, id)

	var i domitem.Item
	if err := row.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Quantity, &i.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domitem.ErrItemNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*domitem.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, order_id, product_id, name, quantity, price
        FROM items
        ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domitem.Item, 0)
	for rows.Next() {
		var i domitem.Item
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Quantity, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}
