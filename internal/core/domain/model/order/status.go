package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// Main line (strict forward path, no state is ever re-entered):
//
//	pending -> confirmed -> assigned -> out_for_delivery -> delivered -> completed
//
// cancelled branches off from every non-terminal state and, like completed,
// is terminal.
//
// Status is a value object; the legal transitions per actor role live in a
// single table consulted by NextFor, so the rule cannot be bypassed by a
// different calling surface.
type Status string

const (
	// Pending is the initial status of every order, set by the external
	// order-placement flow. Orders are never created in any other state.
	Pending Status = "pending"

	// Confirmed indicates an administrator accepted the order. This is the
	// minimum state required before a delivery person can be assigned.
	Confirmed Status = "confirmed"

	// Assigned indicates a delivery person has been bound to the order.
	Assigned Status = "assigned"

	// OutForDelivery indicates the assigned delivery person is under way.
	OutForDelivery Status = "out_for_delivery"

	// Delivered indicates the delivery person handed the order over.
	Delivered Status = "delivered"

	// Completed is the successful terminal state.
	Completed Status = "completed"

	// Cancelled is the administrative terminal state, reachable from any
	// non-terminal status.
	Cancelled Status = "cancelled"
)

// Role identifies the kind of actor requesting a lifecycle operation.
// The identity/role provider is an external collaborator; values arriving
// here are trusted as given.
type Role string

const (
	// RoleAdministrator may confirm, assign, reassign, complete, and cancel orders.
	RoleAdministrator Role = "administrator"

	// RoleDeliveryPerson may advance only orders assigned to them, one step at
	// a time: assigned -> out_for_delivery -> delivered.
	RoleDeliveryPerson Role = "deliveryperson"
)

// Validate checks that the role is one of the known actor kinds.
func (r Role) Validate() error {
	if r != RoleAdministrator && r != RoleDeliveryPerson {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known actor role", string(r)))
	}
	return nil
}

func (r Role) String() string {
	return string(r)
}

// transitions is the authoritative transition table:
// current status -> actor role -> allowed next statuses.
//
// Assignment (confirmed -> assigned) is intentionally absent: it binds a
// delivery person as well as changing status and therefore goes through
// Order.Assign, never through a bare status transition.
var transitions = map[Status]map[Role][]Status{
	Pending: {
		RoleAdministrator: {Confirmed, Cancelled},
	},
	Confirmed: {
		RoleAdministrator: {Cancelled},
	},
	Assigned: {
		RoleAdministrator:  {Cancelled},
		RoleDeliveryPerson: {OutForDelivery},
	},
	OutForDelivery: {
		RoleAdministrator:  {Cancelled},
		RoleDeliveryPerson: {Delivered},
	},
	Delivered: {
		RoleAdministrator: {Completed, Cancelled},
	},
}

// Validate checks that the status is a member of the defined state set.
// Used when reconstructing orders from persistence or parsing external input.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Assigned, OutForDelivery, Delivered, Completed, Cancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// RequiresDeliveryPerson reports whether an order in this status must carry a
// delivery person link. Orders acquire the link at assignment and keep it for
// the rest of the lifecycle.
func (s Status) RequiresDeliveryPerson() bool {
	switch s {
	case Assigned, OutForDelivery, Delivered, Completed:
		return true
	default:
		return false
	}
}

// CanAssign reports whether a delivery person may be bound to an order in
// this status. Only confirmed orders are eligible for initial assignment.
func (s Status) CanAssign() bool {
	return s == Confirmed
}

// CanReassign reports whether the current delivery person may be replaced.
// Reassignment is allowed from assigned through delivered inclusive; it is
// operationally useful even after delivery to correct a misattribution.
func (s Status) CanReassign() bool {
	switch s {
	case Assigned, OutForDelivery, Delivered:
		return true
	default:
		return false
	}
}

// NextFor validates that target is a legal next status for the given actor
// role and returns it.
//
// Returns:
//   - (target, nil) when the transition is in the table
//   - OrderTerminalError when the current status is terminal
//   - InvalidTransitionError for every other combination
//
// The orderID parameter only feeds error details.
func (s Status) NextFor(target Status, role Role, orderID string) (Status, error) {
	if s.IsTerminal() {
		return "", errs.NewOrderTerminalError(orderID, s.String())
	}

	for _, allowed := range transitions[s][role] {
		if allowed == target {
			return target, nil
		}
	}

	return "", errs.NewInvalidTransitionError(s.String(), target.String(), role.String())
}

// NextStatusesFor returns the statuses the given role may move an order in
// this status to. Calling surfaces use it to render only legal choices; the
// result is a copy.
func (s Status) NextStatusesFor(role Role) []Status {
	allowed := transitions[s][role]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}
