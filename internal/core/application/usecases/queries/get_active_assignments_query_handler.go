package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveAssignmentsQueryHandler retrieves in-flight assignments from the
// database. Uses direct SQL for read performance in the CQRS pattern.
type GetActiveAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveAssignmentsQueryHandler creates a handler for in-flight
// assignment queries. Requires a GORM database connection.
func NewGetActiveAssignmentsQueryHandler(db *gorm.DB) GetActiveAssignmentsQueryHandler {
	return GetActiveAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Rows are sorted by assignment time, oldest
// first, so the longest-waiting deliveries top the report.
func (h GetActiveAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveAssignmentsQuery,
) ([]GetActiveAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetActiveAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			delivery_person_id,
			assigned_at
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY assigned_at
	`, order.Assigned, order.OutForDelivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveAssignmentsQueryResponse
		var id, personID uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&personID,
			&resp.AssignedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID

		linkedID, idErr := kernel.UUIDFromBytes(personID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DeliveryPersonID = linkedID
		resp.Status = order.Status(status)

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
