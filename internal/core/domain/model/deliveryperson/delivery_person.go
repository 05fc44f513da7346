package deliveryperson

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for delivery person operations.
var (
	// ErrNameIsRequired is returned when creating a delivery person without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDeliveryPersonIsNotConstructed is returned when using an improperly
	// initialized DeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New(
		"DeliveryPerson must be created via NewDeliveryPerson or RestoreDeliveryPerson")
)

// DeliveryPerson represents a user with the deliveryperson role.
// It is an aggregate root that manages the person's identity and eligibility
// to receive assignments. Performance statistics are not stored on the
// aggregate; they are derived on demand from the orders linked to the person.
//
// Business rules:
//   - must have a valid UUID and a non-empty name
//   - only active persons may receive new assignments; deactivation does not
//     touch orders already linked to the person
type DeliveryPerson struct {
	id       kernel.UUID
	name     string
	phone    string
	isActive bool
	guard    guard.ConstructorGuard
}

// NewDeliveryPerson creates a new DeliveryPerson. New persons start active
// and eligible for assignments. Phone is a display-only contact field.
func NewDeliveryPerson(id kernel.UUID, name, phone string) (*DeliveryPerson, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
	); err != nil {
		return nil, err
	}

	return &DeliveryPerson{
		id:       id,
		name:     name,
		phone:    phone,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryPerson reconstructs a delivery person from persistence,
// including the stored activity flag.
func RestoreDeliveryPerson(id kernel.UUID, name, phone string, isActive bool) (*DeliveryPerson, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
	); err != nil {
		return nil, err
	}

	return &DeliveryPerson{
		id:       id,
		name:     name,
		phone:    phone,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryPerson was created through a constructor.
func (p *DeliveryPerson) Validate() error {
	if p == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return p.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// IsEqual compares two delivery persons by identity.
func (p *DeliveryPerson) IsEqual(other *DeliveryPerson) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the delivery person's unique identifier.
func (p *DeliveryPerson) ID() kernel.UUID {
	return p.id
}

// Name returns the delivery person's display name.
func (p *DeliveryPerson) Name() string {
	return p.name
}

// Phone returns the display-only contact number.
func (p *DeliveryPerson) Phone() string {
	return p.phone
}

// IsActive reports whether the person is eligible to receive assignments.
func (p *DeliveryPerson) IsActive() bool {
	return p.isActive
}

// Activate marks the person as eligible for assignments.
func (p *DeliveryPerson) Activate() {
	p.isActive = true
}

// Deactivate withdraws the person from new assignments. Orders already
// linked to them are unaffected.
func (p *DeliveryPerson) Deactivate() {
	p.isActive = false
}

func validateName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	return nil
}
