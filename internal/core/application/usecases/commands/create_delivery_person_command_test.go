package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeliveryPersonCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryPersonCommand(id, "Jamie Fox", "+1-555-0101")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.PersonID())
	assert.Equal(t, "Jamie Fox", cmd.Name())
	assert.Equal(t, "+1-555-0101", cmd.Phone())
}

func TestNewCreateDeliveryPersonCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateDeliveryPersonCommand(kernel.NewUUID(), "", "+1-555-0101")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateDeliveryPersonCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCreateDeliveryPersonCommand(kernel.UUID{}, "Jamie Fox", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateDeliveryPersonCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateDeliveryPersonCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryPersonCommandIsNotConstructed)
}
