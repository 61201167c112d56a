package mysql

import (
	"context"
	"database/sql"
	"errors"

	domorder "example.com/order-management/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO orders (customer_id, date, shipped)
        VALUES (?, ?, ?)
    `, o.CustomerID, o.Date.UTC(), o.Shipped)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	o.ID = id
	return o, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders SET customer_id = ?, date = ?, shipped = ?
        WHERE id = ?
    `, o.CustomerID, o.Date.UTC(), o.Shipped, o.ID)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domorder.ErrOrderNotFound
	}
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		if isMySQLError(err, errRowIsReferenced) {
			return domorder.ErrOrderHasItems
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domorder.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, customer_id, date, shipped
        FROM orders WHERE id = ?
    `, id)

	var o domorder.Order
	if err := row.Scan(&o.ID, &o.CustomerID, &o.Date, &o.Shipped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	return r.query(ctx, `
        SELECT id, customer_id, date, shipped
        FROM orders
        ORDER BY id
    `)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domorder.Order, error) {
	return r.query(ctx, `
        SELECT id, customer_id, date, shipped
        FROM orders WHERE customer_id = ?
        ORDER BY id
    `, customerID)
}

func (r *OrderRepository) query(ctx context.Context, query string, args ...any) ([]*domorder.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domorder.Order, 0)
	for rows.Next() {
		var o domorder.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Date, &o.Shipped); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
