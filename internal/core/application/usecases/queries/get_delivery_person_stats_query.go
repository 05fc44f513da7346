package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveryPersonStatsQueryIsNotConstructed = errors.New(
	"GetDeliveryPersonStatsQuery must be created via NewGetDeliveryPersonStatsQuery constructor",
)

// GetDeliveryPersonStatsQuery retrieves the derived performance figures of a
// single delivery person. The figures are computed on demand from the orders
// currently linked to the person; nothing is read from a stored counter.
//
// Example:
//
//	query, err := NewGetDeliveryPersonStatsQuery(personID)
//	if err != nil {
//	    return err
//	}
//	stats, err := handler.Handle(ctx, query)
type GetDeliveryPersonStatsQuery struct {
	personID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonStatsQuery creates a per-person statistics query.
func NewGetDeliveryPersonStatsQuery(personID kernel.UUID) (GetDeliveryPersonStatsQuery, error) {
	if err := personID.Validate(); err != nil {
		return GetDeliveryPersonStatsQuery{}, err
	}

	return GetDeliveryPersonStatsQuery{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPersonStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonStatsQueryIsNotConstructed)
}

// PersonID returns the delivery person whose figures are requested.
func (q GetDeliveryPersonStatsQuery) PersonID() kernel.UUID {
	return q.personID
}

// GetDeliveryPersonStatsQueryResponse is the per-person statistics read model.
type GetDeliveryPersonStatsQueryResponse struct {
	PersonID kernel.UUID
	Name     string
	IsActive bool

	TotalAssigned  int
	TotalDelivered int
	TotalCompleted int

	// DeliveryRate is a whole percentage in [0, 100].
	DeliveryRate int

	// AverageDeliveryTime is the mean assignment-to-delivery span across the
	// person's delivered orders; zero when none were delivered yet.
	AverageDeliveryTime time.Duration
}
