package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Annotations are the free-form notes a delivery person may attach while a
// transition fires. Empty fields are ignored on merge; an already-set value is
// overwritten by a non-empty one.
type Annotations struct {
	// DeliveryNotes is free text about the delivery attempt.
	DeliveryNotes string

	// EstimatedDeliveryTime is the delivery person's own estimate, kept as
	// free text ("around 6pm", "30 min") exactly as entered.
	EstimatedDeliveryTime string
}

// Order is the aggregate root of the fulfillment workflow. It tracks a
// customer purchase from placement to completion, carrying the current
// lifecycle status, the delivery-person link, and the timestamps stamped at
// each transition.
//
// Invariants:
//   - status is always a member of the defined state set, reachable from
//     pending through the transition table
//   - a delivery person can only be linked once the order reached confirmed
//   - every timestamp is set exactly once and never cleared, including across
//     reassignment
//   - terminal orders (completed, cancelled) are immutable
//
// Commerce fields (customer, address, items, total amount) are display-only;
// the workflow reads them but never mutates them.
type Order struct {
	id           kernel.UUID
	orderNumber  string
	customerName string
	address      Address
	totalAmount  float64
	items        []Item

	status           Status
	deliveryPersonID *kernel.UUID

	assignedAt  *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	completedAt *time.Time

	annotations Annotations

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order. Every new order starts in Pending;
// there is no way to create one in any other state.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - orderNumber: human-readable display number, not used for ordering logic
//   - customerName: display-only customer reference
//   - address: display-only delivery destination
//   - totalAmount: display-only order total (must not be negative)
//   - items: display-only order lines
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	address Address,
	totalAmount float64,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		validateOrderNumber(orderNumber),
		address.Validate(),
		validateTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:           id,
		orderNumber:  orderNumber,
		customerName: customerName,
		address:      address,
		totalAmount:  totalAmount,
		items:        items,
		status:       Pending,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It validates the status
// value and the status/delivery-person consistency rule but accepts any
// combination of timestamps, since those reflect history already recorded.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	address Address,
	totalAmount float64,
	items []Item,
	status Status,
	deliveryPersonID *kernel.UUID,
	assignedAt, shippedAt, deliveredAt, completedAt *time.Time,
	annotations Annotations,
) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		validateOrderNumber(orderNumber),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status.RequiresDeliveryPerson() && deliveryPersonID == nil {
		return nil, errs.NewInvalidStateError(id.String(), status.String(),
			"status requires a delivery person link")
	}
	// A cancelled order legitimately keeps the link it had when it was cancelled.
	if deliveryPersonID != nil && !status.RequiresDeliveryPerson() && status != Cancelled {
		return nil, errs.NewInvalidStateError(id.String(), status.String(),
			"status does not permit a delivery person link")
	}

	return &Order{
		id:               id,
		orderNumber:      orderNumber,
		customerName:     customerName,
		address:          address,
		totalAmount:      totalAmount,
		items:            items,
		status:           status,
		deliveryPersonID: deliveryPersonID,
		assignedAt:       assignedAt,
		shippedAt:        shippedAt,
		deliveredAt:      deliveredAt,
		completedAt:      completedAt,
		annotations:      annotations,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable display number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the display-only customer reference.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Address returns the display-only delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// TotalAmount returns the display-only order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Items returns the display-only order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPerson returns the linked delivery person's ID, or nil when the
// order is unassigned.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// AssignedAt returns when the order was first assigned, or nil.
// Reassignment does not restamp it.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// ShippedAt returns when the order went out for delivery, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order was delivered, or nil. Once set it is
// immutable; the workflow never moves a completed delivery backward.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Annotations returns the delivery person's notes attached to the order.
func (o *Order) Annotations() Annotations {
	return o.annotations
}

// TransitionTo moves the order to target on behalf of the given actor.
// This is the single entry point for status changes; assignment and
// reassignment go through Assign and Reassign instead.
//
// Checks, in order:
//  1. terminal orders are rejected with OrderTerminalError
//  2. a delivery person acting on an order not linked to them is rejected
//     with NotAssignedToActorError, whatever the requested pair
//  3. the transition table decides legality per role; anything else is
//     rejected with InvalidTransitionError
//
// On success the status is updated, the timestamp matching the target is
// stamped (exactly once), and non-empty annotations are merged in. On failure
// the order is left untouched.
func (o *Order) TransitionTo(target Status, role Role, actorID *kernel.UUID, notes Annotations) error {
	if err := role.Validate(); err != nil {
		return err
	}

	if role == RoleDeliveryPerson && !o.status.IsTerminal() {
		if actorID == nil || o.deliveryPersonID == nil || !o.deliveryPersonID.IsEqual(*actorID) {
			actor := ""
			if actorID != nil {
				actor = actorID.String()
			}
			return errs.NewNotAssignedToActorError(o.id.String(), actor)
		}
	}

	next, err := o.status.NextFor(target, role, o.id.String())
	if err != nil {
		return err
	}

	o.status = next
	o.stampTransition(next)
	o.mergeAnnotations(notes)
	return nil
}

// Assign binds a delivery person to a confirmed order, stamps assignedAt, and
// advances the status to Assigned. Eligibility of the person (isActive) is
// checked by the caller, which resolves the person; the aggregate only
// enforces its own state.
func (o *Order) Assign(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewOrderTerminalError(o.id.String(), o.status.String())
	}
	if !o.status.CanAssign() {
		return errs.NewInvalidStateError(o.id.String(), o.status.String(),
			"order must be confirmed before assignment")
	}

	o.deliveryPersonID = &personID
	o.status = Assigned
	o.stampTransition(Assigned)
	return nil
}

// Reassign replaces the delivery person linked to the order without altering
// its status. Allowed from assigned through delivered inclusive. assignedAt is
// deliberately not restamped: averageDeliveryTime keeps measuring from the
// original assignment, and the order counts toward the new person only, since
// no assignment history is retained.
func (o *Order) Reassign(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewOrderTerminalError(o.id.String(), o.status.String())
	}
	if o.deliveryPersonID == nil || !o.status.CanReassign() {
		return errs.NewInvalidStateError(o.id.String(), o.status.String(),
			"order has no replaceable assignment")
	}

	o.deliveryPersonID = &personID
	return nil
}

// stampTransition records the timestamp matching the new status. Each field
// is written at most once; re-entry is impossible on the forward path, but
// the guard also protects restored histories.
func (o *Order) stampTransition(next Status) {
	now := time.Now()
	switch next {
	case Assigned:
		if o.assignedAt == nil {
			o.assignedAt = &now
		}
	case OutForDelivery:
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	case Completed:
		if o.completedAt == nil {
			o.completedAt = &now
		}
	}
}

func (o *Order) mergeAnnotations(notes Annotations) {
	if notes.DeliveryNotes != "" {
		o.annotations.DeliveryNotes = notes.DeliveryNotes
	}
	if notes.EstimatedDeliveryTime != "" {
		o.annotations.EstimatedDeliveryTime = notes.EstimatedDeliveryTime
	}
}

func validateID(id kernel.UUID) error {
	return id.Validate()
}

func validateOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	return nil
}

func validateTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	return nil
}
