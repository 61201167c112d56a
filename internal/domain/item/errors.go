package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	// ErrUnknownOrder is returned by stores that enforce the order reference.
	ErrUnknownOrder = errors.New("item references an order that does not exist")
)
