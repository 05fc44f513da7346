package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fulfillment workflow rejection kinds. Every
// rejection leaves the order record unchanged; none of them is retried
// by the core, retry policy belongs to the caller.
var (
	ErrInvalidTransition  = errors.New("transition is not allowed from this state")
	ErrNotAssignedToActor = errors.New("order is assigned to a different delivery person")
	ErrOrderTerminal      = errors.New("order is in a terminal state")
	ErrInvalidState       = errors.New("order is not in a valid state for this operation")
	ErrInactivePerson     = errors.New("delivery person cannot receive assignments")
)

// InvalidTransitionError indicates that the requested status change is not
// the legal next step for the caller's role.
type InvalidTransitionError struct {
	From  string
	To    string
	Actor string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected status pair.
func NewInvalidTransitionError(from, to, actor string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Actor: actor}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s is not allowed for %s", ErrInvalidTransition, e.From, e.To, e.Actor)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotAssignedToActorError indicates a delivery person acting on an order
// that is not linked to them.
type NotAssignedToActorError struct {
	OrderID string
	ActorID string
}

// NewNotAssignedToActorError creates a NotAssignedToActorError for the rejected actor.
func NewNotAssignedToActorError(orderID, actorID string) *NotAssignedToActorError {
	return &NotAssignedToActorError{OrderID: orderID, ActorID: actorID}
}

func (e *NotAssignedToActorError) Error() string {
	return fmt.Sprintf("%s: order is: %s, actor is: %s", ErrNotAssignedToActor, e.OrderID, e.ActorID)
}

func (e *NotAssignedToActorError) Unwrap() error {
	return ErrNotAssignedToActor
}

// OrderTerminalError indicates an attempt to mutate a completed or cancelled order.
type OrderTerminalError struct {
	OrderID string
	Status  string
}

// NewOrderTerminalError creates an OrderTerminalError for the terminal order.
func NewOrderTerminalError(orderID, status string) *OrderTerminalError {
	return &OrderTerminalError{OrderID: orderID, Status: status}
}

func (e *OrderTerminalError) Error() string {
	return fmt.Sprintf("%s: order is: %s, status is: %s", ErrOrderTerminal, e.OrderID, e.Status)
}

func (e *OrderTerminalError) Unwrap() error {
	return ErrOrderTerminal
}

// InvalidStateError indicates an assignment operation on an order whose
// current status does not permit it.
type InvalidStateError struct {
	OrderID string
	Status  string
	Reason  string
}

// NewInvalidStateError creates an InvalidStateError for the rejected operation.
func NewInvalidStateError(orderID, status, reason string) *InvalidStateError {
	return &InvalidStateError{OrderID: orderID, Status: status, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: order is: %s, status is: %s (%s)", ErrInvalidState, e.OrderID, e.Status, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InactivePersonError indicates an assignment targeting a delivery person
// whose isActive flag is off.
type InactivePersonError struct {
	PersonID string
}

// NewInactivePersonError creates an InactivePersonError for the inactive target.
func NewInactivePersonError(personID string) *InactivePersonError {
	return &InactivePersonError{PersonID: personID}
}

func (e *InactivePersonError) Error() string {
	return fmt.Sprintf("%s: delivery person is: %s", ErrInactivePerson, e.PersonID)
}

func (e *InactivePersonError) Unwrap() error {
	return ErrInactivePerson
}
