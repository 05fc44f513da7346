package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an order arriving from the external
// order-placement flow. The fulfillment core registers it in pending status;
// the commerce fields are carried for display only.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "ORD-1001", "Alex Carter",
//	    order.Address{Street: "12 Baker Street"}, 42.50, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNumber  string
	customerName string
	address      order.Address
	totalAmount  float64
	items        []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a newly placed order.
// Validates the identifier, order number, and address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerName string,
	address order.Address,
	totalAmount float64,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		totalAmount:  totalAmount,
		items:        items,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerName returns the display-only customer reference.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// TotalAmount returns the display-only order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Items returns the display-only order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
