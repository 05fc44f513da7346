package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignDeliveryPersonCommandIsNotConstructed = errors.New(
	"ReassignDeliveryPersonCommand must be created via NewReassignDeliveryPersonCommand constructor",
)

// ReassignDeliveryPersonCommand replaces the delivery person on an order that
// already has one. Used when the original assignee becomes unavailable
// mid-delivery.
type ReassignDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	personID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignDeliveryPersonCommand creates a reassignment request.
func NewReassignDeliveryPersonCommand(orderID, personID kernel.UUID) (ReassignDeliveryPersonCommand, error) {
	cmd := ReassignDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPersonID(personID),
	); err != nil {
		return ReassignDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrReassignDeliveryPersonCommandIsNotConstructed)
}

// OrderID returns the order to reassign.
func (c ReassignDeliveryPersonCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PersonID returns the replacement delivery person.
func (c ReassignDeliveryPersonCommand) PersonID() kernel.UUID {
	return c.personID
}

func (c *ReassignDeliveryPersonCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReassignDeliveryPersonCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}
	c.personID = personID
	return nil
}
