package commands

import (
	"context"
)

// TransitionOrderCommandHandler applies lifecycle transitions. The order
// aggregate decides legality through the transition table; the handler only
// provides the transaction boundary and the compare-and-set persistence that
// keeps two racing callers from both succeeding.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for transition requests.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition request. The status observed at read time
// is the compare-and-set precondition of the write: a concurrent transition
// that lands first makes this one fail with an InvalidState rejection and no
// side effect.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observed := aggregate.Status()

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Role(), cmd.ActorID(), cmd.Annotations()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, observed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
