package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
	"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
)

// CreateDeliveryPersonCommand registers a new delivery person in the
// directory. New persons start active and eligible for assignments.
type CreateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	personID kernel.UUID
	name     string
	phone    string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a command to register a delivery
// person. Validates the identifier and name; phone is display-only.
func NewCreateDeliveryPersonCommand(personID kernel.UUID, name, phone string) (CreateDeliveryPersonCommand, error) {
	cmd := CreateDeliveryPersonCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPersonID(personID),
		cmd.setName(name),
	); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the delivery person's unique identifier.
func (c CreateDeliveryPersonCommand) PersonID() kernel.UUID {
	return c.personID
}

// Name returns the delivery person's display name.
func (c CreateDeliveryPersonCommand) Name() string {
	return c.name
}

// Phone returns the display-only contact number.
func (c CreateDeliveryPersonCommand) Phone() string {
	return c.phone
}

func (c *CreateDeliveryPersonCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}
	c.personID = personID
	return nil
}

func (c *CreateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
