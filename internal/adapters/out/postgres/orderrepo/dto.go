// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire string so rows stay readable in ad hoc SQL;
// the timestamp columns are nullable and filled as the lifecycle advances.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber  string    `gorm:"uniqueIndex;size:64"`
	CustomerName string
	Street       string
	City         string
	ZipCode      string
	TotalAmount  float64

	Items []order.Item `gorm:"serializer:json;type:jsonb"`

	Status           string     `gorm:"size:32;index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`

	AssignedAt  *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CompletedAt *time.Time

	DeliveryNotes         string
	EstimatedDeliveryTime string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var personID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		personID = &raw
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderNumber:           aggregate.OrderNumber(),
		CustomerName:          aggregate.CustomerName(),
		Street:                aggregate.Address().Street,
		City:                  aggregate.Address().City,
		ZipCode:               aggregate.Address().ZipCode,
		TotalAmount:           aggregate.TotalAmount(),
		Items:                 aggregate.Items(),
		Status:                aggregate.Status().String(),
		DeliveryPersonID:      personID,
		AssignedAt:            aggregate.AssignedAt(),
		ShippedAt:             aggregate.ShippedAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
		CompletedAt:           aggregate.CompletedAt(),
		DeliveryNotes:         aggregate.Annotations().DeliveryNotes,
		EstimatedDeliveryTime: aggregate.Annotations().EstimatedDeliveryTime,
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, which re-validates the status and link consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var personID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		pID, personErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if personErr != nil {
			return nil, personErr
		}
		personID = &pID
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerName,
		order.Address{Street: dto.Street, City: dto.City, ZipCode: dto.ZipCode},
		dto.TotalAmount,
		dto.Items,
		order.Status(dto.Status),
		personID,
		dto.AssignedAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.CompletedAt,
		order.Annotations{
			DeliveryNotes:         dto.DeliveryNotes,
			EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		},
	)
}
