package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL for read performance; filters are applied in the query so
// large order sets never cross the wire.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by order number for
// stable output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			order_number,
			customer_name,
			street,
			city,
			zip_code,
			total_amount,
			items,
			status,
			delivery_person_id,
			assigned_at,
			shipped_at,
			delivered_at,
			completed_at,
			delivery_notes,
			estimated_delivery_time
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlText += " AND status = ?"
		args = append(args, *query.Status())
	}
	if query.PersonID() != nil {
		sqlText += " AND delivery_person_id = ?"
		args = append(args, query.PersonID().Bytes())
	}
	sqlText += " ORDER BY order_number"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow converts one database row into the order read model, mapping
// nullable columns to nil pointers.
func scanOrderRow(rows *sql.Rows) (GetOrdersQueryResponse, error) {
	var resp GetOrdersQueryResponse
	var id uuid.UUID
	var personID uuid.NullUUID
	var items []byte
	var status string
	var assignedAt, shippedAt, deliveredAt, completedAt sql.NullTime
	var deliveryNotes, estimatedDeliveryTime sql.NullString

	err := rows.Scan(
		&id,
		&resp.OrderNumber,
		&resp.CustomerName,
		&resp.Address.Street,
		&resp.Address.City,
		&resp.Address.ZipCode,
		&resp.TotalAmount,
		&items,
		&status,
		&personID,
		&assignedAt,
		&shippedAt,
		&deliveredAt,
		&completedAt,
		&deliveryNotes,
		&estimatedDeliveryTime,
	)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)

	if personID.Valid {
		linked, idErr := kernel.UUIDFromBytes(personID.UUID[:])
		if idErr != nil {
			return GetOrdersQueryResponse{}, idErr
		}
		resp.DeliveryPersonID = &linked
	}

	if len(items) > 0 {
		if err = json.Unmarshal(items, &resp.Items); err != nil {
			return GetOrdersQueryResponse{}, err
		}
	}

	resp.AssignedAt = nullableTime(assignedAt)
	resp.ShippedAt = nullableTime(shippedAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.CompletedAt = nullableTime(completedAt)
	resp.DeliveryNotes = deliveryNotes.String
	resp.EstimatedDeliveryTime = estimatedDeliveryTime.String

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
