package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetDeliveryPersonActivityCommandIsNotConstructed = errors.New(
	"SetDeliveryPersonActivityCommand must be created via NewSetDeliveryPersonActivityCommand constructor",
)

// SetDeliveryPersonActivityCommand toggles a delivery person's availability.
// Deactivation blocks future assignments but leaves current ones untouched.
type SetDeliveryPersonActivityCommand struct { //nolint:recvcheck //using for validation
	personID kernel.UUID
	active   bool

	guard guard.ConstructorGuard
}

// NewSetDeliveryPersonActivityCommand creates an activity toggle request.
func NewSetDeliveryPersonActivityCommand(personID kernel.UUID, active bool) (SetDeliveryPersonActivityCommand, error) {
	cmd := SetDeliveryPersonActivityCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setPersonID(personID); err != nil {
		return SetDeliveryPersonActivityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryPersonActivityCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryPersonActivityCommandIsNotConstructed)
}

// PersonID returns the delivery person to update.
func (c SetDeliveryPersonActivityCommand) PersonID() kernel.UUID {
	return c.personID
}

// Active reports the requested availability state.
func (c SetDeliveryPersonActivityCommand) Active() bool {
	return c.active
}

func (c *SetDeliveryPersonActivityCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}
	c.personID = personID
	return nil
}
