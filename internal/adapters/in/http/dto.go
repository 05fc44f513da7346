// Package http provides the inbound HTTP adapter: request/response models,
// route registration, and the mapping from workflow errors to status codes.
package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// Error is the uniform error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries the delivery destination of a new order.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// ItemRequest is one order line as submitted by the placement flow.
type ItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest registers a newly placed order with the workflow.
type CreateOrderRequest struct {
	OrderNumber  string         `json:"orderNumber"`
	CustomerName string         `json:"customerName"`
	Address      AddressRequest `json:"address"`
	TotalAmount  float64        `json:"totalAmount"`
	Items        []ItemRequest  `json:"items"`
}

// CreateOrderResponse returns the identifier minted for the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// TransitionRequest asks for a lifecycle status change.
type TransitionRequest struct {
	TargetStatus          string `json:"targetStatus"`
	ActorRole             string `json:"actorRole"`
	ActorID               string `json:"actorId,omitempty"`
	DeliveryNotes         string `json:"deliveryNotes,omitempty"`
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime,omitempty"`
}

// AssignRequest binds (or rebinds) a delivery person to an order.
type AssignRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// CreateDeliveryPersonRequest registers a delivery person in the directory.
type CreateDeliveryPersonRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateDeliveryPersonResponse returns the identifier minted for the person.
type CreateDeliveryPersonResponse struct {
	ID string `json:"id"`
}

// ActivityRequest toggles a delivery person's availability.
type ActivityRequest struct {
	IsActive bool `json:"isActive"`
}

// OrderResponse is the order representation returned by listing endpoints.
type OrderResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	Address      AddressRequest  `json:"address"`
	TotalAmount  float64         `json:"totalAmount"`
	Items        []ItemRequest   `json:"items"`
	Status       string          `json:"status"`
	DeliveryPersonID *string     `json:"deliveryPersonId,omitempty"`
	AssignedAt   *time.Time      `json:"assignedAt,omitempty"`
	ShippedAt    *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	DeliveryNotes         string `json:"deliveryNotes,omitempty"`
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime,omitempty"`
}

// StatsResponse is the per-person statistics representation.
type StatsResponse struct {
	PersonID       string `json:"personId"`
	Name           string `json:"name"`
	IsActive       bool   `json:"isActive"`
	TotalAssigned  int    `json:"totalAssigned"`
	TotalDelivered int    `json:"totalDelivered"`
	TotalCompleted int    `json:"totalCompleted"`
	DeliveryRate   int    `json:"deliveryRate"`

	// AverageDeliveryTimeSeconds carries the duration in whole seconds so
	// clients do not need to parse Go duration strings.
	AverageDeliveryTimeSeconds int64 `json:"averageDeliveryTimeSeconds"`
}

// OverallStatsResponse is the dashboard representation.
type OverallStatsResponse struct {
	TotalAssigned              int             `json:"totalAssigned"`
	TotalDelivered             int             `json:"totalDelivered"`
	TotalCompleted             int             `json:"totalCompleted"`
	DeliveryRate               int             `json:"deliveryRate"`
	AverageDeliveryTimeSeconds int64           `json:"averageDeliveryTimeSeconds"`
	Persons                    []StatsResponse `json:"persons"`
}

// AssignmentResponse is one in-flight assignment row.
type AssignmentResponse struct {
	OrderID          string    `json:"orderId"`
	OrderNumber      string    `json:"orderNumber"`
	Status           string    `json:"status"`
	DeliveryPersonID string    `json:"deliveryPersonId"`
	AssignedAt       time.Time `json:"assignedAt"`
}

func orderResponseFrom(row queries.GetOrdersQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:           row.ID.String(),
		OrderNumber:  row.OrderNumber,
		CustomerName: row.CustomerName,
		Address: AddressRequest{
			Street:  row.Address.Street,
			City:    row.Address.City,
			ZipCode: row.Address.ZipCode,
		},
		TotalAmount:           row.TotalAmount,
		Status:                row.Status.String(),
		AssignedAt:            row.AssignedAt,
		ShippedAt:             row.ShippedAt,
		DeliveredAt:           row.DeliveredAt,
		CompletedAt:           row.CompletedAt,
		DeliveryNotes:         row.DeliveryNotes,
		EstimatedDeliveryTime: row.EstimatedDeliveryTime,
	}

	if row.DeliveryPersonID != nil {
		id := row.DeliveryPersonID.String()
		resp.DeliveryPersonID = &id
	}

	resp.Items = make([]ItemRequest, 0, len(row.Items))
	for _, item := range row.Items {
		resp.Items = append(resp.Items, ItemRequest{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return resp
}

func statsResponseFrom(row queries.GetDeliveryPersonStatsQueryResponse) StatsResponse {
	return StatsResponse{
		PersonID:                   row.PersonID.String(),
		Name:                       row.Name,
		IsActive:                   row.IsActive,
		TotalAssigned:              row.TotalAssigned,
		TotalDelivered:             row.TotalDelivered,
		TotalCompleted:             row.TotalCompleted,
		DeliveryRate:               row.DeliveryRate,
		AverageDeliveryTimeSeconds: int64(row.AverageDeliveryTime.Seconds()),
	}
}
