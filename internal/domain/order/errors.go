package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderHasItems = errors.New("order still has items")
)
