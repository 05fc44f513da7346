package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveAssignmentsQueryIsNotConstructed = errors.New(
	"GetActiveAssignmentsQuery must be created via NewGetActiveAssignmentsQuery constructor",
)

// GetActiveAssignmentsQuery retrieves every order currently in the hands of a
// delivery person: assigned or out for delivery. Feeds the workload report
// and the dispatcher's live board.
type GetActiveAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveAssignmentsQuery creates a query for in-flight assignments.
func NewGetActiveAssignmentsQuery() GetActiveAssignmentsQuery {
	return GetActiveAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAssignmentsQueryIsNotConstructed)
}

// GetActiveAssignmentsQueryResponse is one in-flight assignment row.
type GetActiveAssignmentsQueryResponse struct {
	OrderID          kernel.UUID
	OrderNumber      string
	Status           order.Status
	DeliveryPersonID kernel.UUID
	AssignedAt       time.Time
}
