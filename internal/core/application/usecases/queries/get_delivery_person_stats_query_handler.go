package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetDeliveryPersonStatsQueryHandler derives the performance figures of one
// delivery person. It reads full aggregates through the repositories so the
// counting rules live in the StatsCalculator alone and cannot drift between
// read surfaces.
type GetDeliveryPersonStatsQueryHandler struct {
	orderRepo  ports.OrderRepository
	personRepo ports.DeliveryPersonRepository
	calculator services.StatsCalculator
}

// NewGetDeliveryPersonStatsQueryHandler creates a handler for per-person
// statistics queries.
func NewGetDeliveryPersonStatsQueryHandler(
	orderRepo ports.OrderRepository,
	personRepo ports.DeliveryPersonRepository,
) GetDeliveryPersonStatsQueryHandler {
	return GetDeliveryPersonStatsQueryHandler{
		orderRepo:  orderRepo,
		personRepo: personRepo,
		calculator: services.NewStatsCalculator(),
	}
}

// Handle computes the statistics for the requested person. Unknown persons
// yield an ObjectNotFoundError rather than an all-zero answer, so a mistyped
// identifier cannot masquerade as a new hire.
func (h GetDeliveryPersonStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonStatsQuery,
) (GetDeliveryPersonStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryPersonStatsQueryResponse{}, err
	}

	person, err := h.personRepo.Get(ctx, query.PersonID())
	if err != nil {
		return GetDeliveryPersonStatsQueryResponse{}, err
	}

	orders, err := h.orderRepo.GetByDeliveryPerson(ctx, query.PersonID())
	if err != nil {
		return GetDeliveryPersonStatsQueryResponse{}, err
	}

	stats := h.calculator.ForPerson(query.PersonID(), orders)

	return GetDeliveryPersonStatsQueryResponse{
		PersonID:            stats.PersonID,
		Name:                person.Name(),
		IsActive:            person.IsActive(),
		TotalAssigned:       stats.TotalAssigned,
		TotalDelivered:      stats.TotalDelivered,
		TotalCompleted:      stats.TotalCompleted,
		DeliveryRate:        stats.DeliveryRate,
		AverageDeliveryTime: stats.AverageDeliveryTime,
	}, nil
}
