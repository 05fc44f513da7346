package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/deliveryperson"
)

// CreateDeliveryPersonCommandHandler registers new delivery persons in the
// directory.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for delivery person
// registration.
func NewCreateDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPersonCommand) error {
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

	person, err := deliveryperson.NewDeliveryPerson(cmd.PersonID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = uow.DeliveryPersonRepository().Add(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
