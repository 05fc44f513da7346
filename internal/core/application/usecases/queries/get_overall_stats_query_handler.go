package queries

import (
	"context"
	"sort"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetOverallStatsQueryHandler derives the system-wide fulfillment figures.
// One pass over all orders feeds both the totals and the per-person rows, so
// the breakdown always sums to the headline numbers.
type GetOverallStatsQueryHandler struct {
	orderRepo  ports.OrderRepository
	personRepo ports.DeliveryPersonRepository
	calculator services.StatsCalculator
}

// NewGetOverallStatsQueryHandler creates a handler for dashboard statistics
// queries.
func NewGetOverallStatsQueryHandler(
	orderRepo ports.OrderRepository,
	personRepo ports.DeliveryPersonRepository,
) GetOverallStatsQueryHandler {
	return GetOverallStatsQueryHandler{
		orderRepo:  orderRepo,
		personRepo: personRepo,
		calculator: services.NewStatsCalculator(),
	}
}

// Handle computes the dashboard figures. Every registered delivery person
// gets a row, including those with nothing assigned yet; rows are sorted by
// name for stable output.
func (h GetOverallStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOverallStatsQuery,
) (GetOverallStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOverallStatsQueryResponse{}, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return GetOverallStatsQueryResponse{}, err
	}

	persons, err := h.personRepo.GetAll(ctx)
	if err != nil {
		return GetOverallStatsQueryResponse{}, err
	}

	overall := h.calculator.Overall(orders)
	perPerson := h.calculator.PerPerson(orders)

	resp := GetOverallStatsQueryResponse{
		TotalAssigned:       overall.TotalAssigned,
		TotalDelivered:      overall.TotalDelivered,
		TotalCompleted:      overall.TotalCompleted,
		DeliveryRate:        overall.DeliveryRate,
		AverageDeliveryTime: overall.AverageDeliveryTime,
		Persons:             make([]GetDeliveryPersonStatsQueryResponse, 0, len(persons)),
	}

	for _, person := range persons {
		stats := perPerson[person.ID()]
		resp.Persons = append(resp.Persons, GetDeliveryPersonStatsQueryResponse{
			PersonID:            person.ID(),
			Name:                person.Name(),
			IsActive:            person.IsActive(),
			TotalAssigned:       stats.TotalAssigned,
			TotalDelivered:      stats.TotalDelivered,
			TotalCompleted:      stats.TotalCompleted,
			DeliveryRate:        stats.DeliveryRate,
			AverageDeliveryTime: stats.AverageDeliveryTime,
		})
	}

	sort.Slice(resp.Persons, func(i, j int) bool {
		return resp.Persons[i].Name < resp.Persons[j].Name
	})

	return resp, nil
}
