// Package queries contains read operations for the fulfillment workflow.
// Implements the query side of the CQRS pattern: read models are built
// straight from the database or from repositories, without going through
// command-side mutation paths.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for listing surfaces. Both filters are
// optional and combine: a delivery person's board asks for their own orders,
// an administrator's board typically filters by status only.
//
// Example:
//
//	query, err := NewGetOrdersQuery(&status, nil)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status   *order.Status
	personID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. Nil filters mean "all".
func NewGetOrdersQuery(status *order.Status, personID *kernel.UUID) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if personID != nil {
		if err := personID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status:   status,
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// PersonID returns the delivery person filter, or nil for all orders.
func (q GetOrdersQuery) PersonID() *kernel.UUID {
	return q.personID
}

// GetOrdersQueryResponse is the order read model for listing surfaces.
// Nullable fields mirror the lifecycle: a timestamp is nil until the matching
// transition fired.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CustomerName string
	Address      order.Address
	TotalAmount  float64
	Items        []order.Item

	Status           order.Status
	DeliveryPersonID *kernel.UUID

	AssignedAt  *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CompletedAt *time.Time

	DeliveryNotes         string
	EstimatedDeliveryTime string
}
