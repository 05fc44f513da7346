package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// ReassignDeliveryPersonCommandHandler swaps the delivery person on an
// in-flight order. The order keeps its status and its original assignment
// timestamp; only the link changes.
type ReassignDeliveryPersonCommandHandler struct {
	uowFactory UoWFactory
}

// NewReassignDeliveryPersonCommandHandler creates a handler for reassignment
// requests.
func NewReassignDeliveryPersonCommandHandler(uowFactory UoWFactory) ReassignDeliveryPersonCommandHandler {
	return ReassignDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment request. The write is conditional on the
// status observed at read time, so a delivery completed concurrently cannot
// be handed to someone else after the fact.
func (h ReassignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd ReassignDeliveryPersonCommand) error {
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

	person, err := uow.DeliveryPersonRepository().Get(ctx, cmd.PersonID())
	if err != nil {
		return err
	}

	if !person.IsActive() {
		return errs.NewInactivePersonError(person.ID().String())
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observed := aggregate.Status()

	if err = aggregate.Reassign(person.ID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, observed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
