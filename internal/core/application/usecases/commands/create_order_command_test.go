package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := []order.Item{{Name: "Widget", Quantity: 2, Price: 9.99}}

	cmd, err := commands.NewCreateOrderCommand(id, "ORD-1001", "Alex Carter", testAddress(), 42.50, items)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "ORD-1001", cmd.OrderNumber())
	assert.Equal(t, "Alex Carter", cmd.CustomerName())
	assert.Equal(t, testAddress(), cmd.Address())
	assert.InDelta(t, 42.50, cmd.TotalAmount(), 0.001)
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "ORD-1001", "Alex Carter", testAddress(), 42.50, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyOrderNumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", "Alex Carter", testAddress(), 42.50, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1001", "Alex Carter", order.Address{}, 42.50, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
