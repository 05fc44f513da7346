package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AssignDeliveryPersonCommandHandler links confirmed orders to active
// delivery persons. Assignment touches two aggregates, so it runs in a unit
// of work spanning both repositories.
type AssignDeliveryPersonCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDeliveryPersonCommandHandler creates a handler for assignment
// requests.
func NewAssignDeliveryPersonCommandHandler(uowFactory UoWFactory) AssignDeliveryPersonCommandHandler {
	return AssignDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment request. Inactive delivery persons are
// rejected before the order is touched; the write is conditional on the
// order still being confirmed.
func (h AssignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPersonCommand) error {
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

	if err = aggregate.Assign(person.ID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, order.Confirmed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
