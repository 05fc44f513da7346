// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate without a
	// status precondition. Every lifecycle write goes through UpdateInStatus;
	// this is the plain write for callers that do not race on the lifecycle.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists changes to an existing order only if its
	// stored status still equals expected — the compare-and-set every
	// lifecycle mutation goes through. When a concurrent writer got there
	// first, the update affects no rows and an InvalidStateError is
	// returned; the losing caller never corrupts the record.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order. Feeds the statistics aggregation pass.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByDeliveryPerson retrieves the orders currently linked to the given
	// delivery person. Feeds per-person statistics and the reporting
	// collaborator's assigned-order set.
	GetByDeliveryPerson(ctx context.Context, personID kernel.UUID) ([]*order.Order, error)
}
