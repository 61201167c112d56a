package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domorder "example.com/order-management/internal/domain/order"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	query := `
		INSERT INTO orders (customer_id, date, shipped)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, o.CustomerID, o.Date.UTC(), o.Shipped).Scan(&id); err != nil {
		return nil, err
	}
	o.ID = id
	return o, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	query := `
		UPDATE orders
		SET customer_id = $1, date = $2, shipped = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, o.CustomerID, o.Date.UTC(), o.Shipped, o.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domorder.ErrOrderNotFound
	}
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domorder.ErrOrderHasItems
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domorder.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	query := `
		SELECT id, customer_id, date, shipped
		FROM orders
		WHERE id = $1
	`
	o := &domorder.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.Date, &o.Shipped)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	query := `
		SELECT id, customer_id, date, shipped
		FROM orders
		ORDER BY id
	`
	return r.query(ctx, query)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domorder.Order, error) {
	query := `
		SELECT id, customer_id, date, shipped
		FROM orders
		WHERE customer_id = $1
		ORDER BY id
	`
	return r.query(ctx, query, customerID)
}

func (r *OrderRepository) query(ctx context.Context, query string, args ...any) ([]*domorder.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domorder.Order, 0)
	for rows.Next() {
		o := &domorder.Order{}
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Date, &o.Shipped); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
