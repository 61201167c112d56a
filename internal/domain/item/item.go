package item

import "example.com/order-management/internal/domain/validation"

// Item is a line of an order. OrderID refers to orders.id; the reference is
// enforced by the store, not checked here.
type Item struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Quantity  int64
	Price     float64
}

type payload struct {
	ProductID *int64   `json:"product_id" validate:"required"`
	Name      *string  `json:"name" validate:"required"`
	Quantity  *int64   `json:"quantity" validate:"required"`
	Price     *float64 `json:"price" validate:"required"`
}

func (i *Item) IsPersisted() bool {
	return i.ID != 0
}

func (i *Item) Serialize() map[string]any {
	var id any
	if i.IsPersisted() {
		id = i.ID
	}
	return map[string]any{
		"id":         id,
		"order_id":   i.OrderID,
		"product_id": i.ProductID,
		"name":       i.Name,
		"quantity":   i.Quantity,
		"price":      i.Price,
	}
}

// Deserialize binds the item to orderID and reads the remaining fields from data.
// An "order_id" key in data is ignored.
func (i *Item) Deserialize(data any, orderID int64) (*Item, error) {
	i.OrderID = orderID
	var p payload
	if err := validation.Decode("item", data, &p); err != nil {
		return i, err
	}
	i.ProductID = *p.ProductID
	i.Name = *p.Name
	i.Quantity = *p.Quantity
	i.Price = *p.Price
	return i, nil
}
