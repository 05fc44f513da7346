package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDeliveryPersonCommandIsNotConstructed = errors.New(
	"AssignDeliveryPersonCommand must be created via NewAssignDeliveryPersonCommand constructor",
)

// AssignDeliveryPersonCommand hands a confirmed order to a delivery person.
// Only administrators perform assignment, so the command carries no role.
type AssignDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	personID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryPersonCommand creates an assignment request.
func NewAssignDeliveryPersonCommand(orderID, personID kernel.UUID) (AssignDeliveryPersonCommand, error) {
	cmd := AssignDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPersonID(personID),
	); err != nil {
		return AssignDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPersonCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDeliveryPersonCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PersonID returns the delivery person receiving the order.
func (c AssignDeliveryPersonCommand) PersonID() kernel.UUID {
	return c.personID
}

func (c *AssignDeliveryPersonCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryPersonCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}
	c.personID = personID
	return nil
}
