// Package commands contains the business operations that modify fulfillment
// state. Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: validation,
// transaction management, aggregate mutation, persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryPersonRepoFactory provides access to the delivery person
	// repository within a transaction.
	DeliveryPersonRepoFactory interface {
		DeliveryPersonRepository() ports.DeliveryPersonRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryPersonUoW manages transactions for delivery-person-only operations.
	DeliveryPersonUoW interface {
		TxManager
		DeliveryPersonRepoFactory
	}

	// DeliveryPersonUoWFactory creates new delivery person unit of work instances.
	DeliveryPersonUoWFactory interface {
		Create() DeliveryPersonUoW
	}

	// UoW manages transactions across both aggregates. Used by the
	// assignment operations, which read the delivery person and write the
	// order in a single transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		DeliveryPersonRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
