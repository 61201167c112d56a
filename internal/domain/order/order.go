package order

import (
	"time"

	"example.com/order-management/internal/domain/validation"
)

// DateLayout is the wire format of Order.Date (six-digit fractional seconds, UTC).
const DateLayout = "2006-01-02 15:04:05.000000"

type Order struct {
	ID         int64
	CustomerID int64
	Date       time.Time
	Shipped    bool
}

// payload is the inbound shape of an order. The datetime layout matches DateLayout.
type payload struct {
	CustomerID *int64  `json:"customer_id" validate:"required"`
	Date       *string `json:"date" validate:"required,datetime=2006-01-02 15:04:05.000000"`
	Shipped    *bool   `json:"shipped" validate:"required"`
}

// IsPersisted reports whether the order has been assigned an identity by a save.
func (o *Order) IsPersisted() bool {
	return o.ID != 0
}

func (o *Order) Serialize() map[string]any {
	var id any
	if o.IsPersisted() {
		id = o.ID
	}
	return map[string]any{
		"id":          id,
		"customer_id": o.CustomerID,
		"date":        o.Date.UTC().Format(DateLayout),
		"shipped":     o.Shipped,
	}
}

// Deserialize populates the order from a decoded JSON object. The identity is never read from data.
// On error the order must be discarded.
func (o *Order) Deserialize(data any) (*Order, error) {
	var p payload
	if err := validation.Decode("order", data, &p); err != nil {
		return o, err
	}
	date, err := time.ParseInLocation(DateLayout, *p.Date, time.UTC)
	if err != nil {
		return o, validation.MalformedBody("order", "date")
	}
	o.CustomerID = *p.CustomerID
	o.Date = date
	o.Shipped = *p.Shipped
	return o, nil
}
