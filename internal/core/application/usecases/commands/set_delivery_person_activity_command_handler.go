package commands

import (
	"context"
)

// SetDeliveryPersonActivityCommandHandler updates delivery person
// availability.
type SetDeliveryPersonActivityCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

// NewSetDeliveryPersonActivityCommandHandler creates a handler for activity
// toggle requests.
func NewSetDeliveryPersonActivityCommandHandler(
	uowFactory DeliveryPersonUoWFactory,
) SetDeliveryPersonActivityCommandHandler {
	return SetDeliveryPersonActivityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activity toggle. Applying the current state again is a
// no-op that still succeeds.
func (h SetDeliveryPersonActivityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDeliveryPersonActivityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryPersonRepository()

	person, err := repo.Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		person.Activate()
	} else {
		person.Deactivate()
	}

	if err = repo.Update(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
