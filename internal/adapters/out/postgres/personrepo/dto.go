// Package personrepo provides data transfer objects and mapping functions for
// delivery person persistence.
package personrepo

import (
	"fulfillment/internal/core/domain/model/deliveryperson"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryPersonDTO represents the database structure for persisting delivery
// person aggregates. Phone carries a unique index so the same person cannot
// be registered twice from the directory import.
type DeliveryPersonDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:255"`
	Phone    string    `gorm:"uniqueIndex;size:32"`
	IsActive bool
}

// TableName specifies the database table name for delivery person entities.
func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

func fromDomain(aggregate *deliveryperson.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Phone:    aggregate.Phone(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto DeliveryPersonDTO) (*deliveryperson.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return deliveryperson.RestoreDeliveryPerson(id, dto.Name, dto.Phone, dto.IsActive)
}
