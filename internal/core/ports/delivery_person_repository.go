package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/deliveryperson"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryPersonRepository defines the persistence contract for delivery
// person aggregates.
type DeliveryPersonRepository interface {
	// Add persists a new delivery person aggregate to storage.
	Add(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error

	// Update persists changes to an existing delivery person aggregate.
	Update(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error

	// Get retrieves a delivery person by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryperson.DeliveryPerson, error)

	// GetAll retrieves every delivery person, active or not.
	GetAll(ctx context.Context) ([]*deliveryperson.DeliveryPerson, error)
}
