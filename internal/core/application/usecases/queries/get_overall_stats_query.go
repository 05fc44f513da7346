package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetOverallStatsQueryIsNotConstructed = errors.New(
	"GetOverallStatsQuery must be created via NewGetOverallStatsQuery constructor",
)

// GetOverallStatsQuery retrieves the system-wide fulfillment figures plus a
// per-person breakdown for the administrator dashboard.
type GetOverallStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverallStatsQuery creates a query for the system-wide statistics.
// This is a parameterless query that aggregates across every delivery person.
func NewGetOverallStatsQuery() GetOverallStatsQuery {
	return GetOverallStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverallStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverallStatsQueryIsNotConstructed)
}

// GetOverallStatsQueryResponse is the dashboard read model: totals across the
// whole system and the same figures broken down per delivery person.
type GetOverallStatsQueryResponse struct {
	TotalAssigned  int
	TotalDelivered int
	TotalCompleted int

	DeliveryRate        int
	AverageDeliveryTime time.Duration

	Persons []GetDeliveryPersonStatsQueryResponse
}
