package order

import (
	"fulfillment/internal/pkg/errs"
)

// Address is the delivery destination of an order. It is carried for display
// only; no lifecycle behavior depends on it.
type Address struct {
	Street  string
	City    string
	ZipCode string
}

// Validate checks that the address names at least a street.
func (a Address) Validate() error {
	if a.Street == "" {
		return errs.NewValueIsRequiredError("address street")
	}
	return nil
}

// Item is a single order line, carried for display only.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
