package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand requests a lifecycle status change on behalf of an
// actor. This is the single write operation behind every status dropdown:
// administrators confirm, complete, and cancel; delivery persons advance
// their own orders one step at a time.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.OutForDelivery,
//	    order.RoleDeliveryPerson, &personID,
//	    order.Annotations{EstimatedDeliveryTime: "30 min"})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrNotAssignedToActor) {
//	    // acting on someone else's order
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	target      order.Status
	role        order.Role
	actorID     *kernel.UUID
	annotations order.Annotations

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request. The actor ID is
// required for the delivery person role, so ownership of the assignment can
// be checked; administrators may pass nil.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	role order.Role,
	actorID *kernel.UUID,
	annotations order.Annotations,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		annotations: annotations,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(role, actorID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested next status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Role returns the actor's role.
func (c TransitionOrderCommand) Role() order.Role {
	return c.role
}

// ActorID returns the acting delivery person's ID, or nil for administrators.
func (c TransitionOrderCommand) ActorID() *kernel.UUID {
	return c.actorID
}

// Annotations returns the notes to merge into the order on success.
func (c TransitionOrderCommand) Annotations() order.Annotations {
	return c.annotations
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(role order.Role, actorID *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == order.RoleDeliveryPerson {
		if actorID == nil {
			return errs.NewValueIsRequiredError("actorID")
		}
		if err := actorID.Validate(); err != nil {
			return err
		}
	}
	c.role = role
	c.actorID = actorID
	return nil
}
