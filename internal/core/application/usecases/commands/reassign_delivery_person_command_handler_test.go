package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReassignDeliveryPersonCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	originalID := kernel.NewUUID()
	replacementID := kernel.NewUUID()

	cmd, err := commands.NewReassignDeliveryPersonCommand(orderID, replacementID)
	require.NoError(t, err)

	testOrder := assignedOrder(t, orderID, originalID)
	originalAssignedAt := testOrder.AssignedAt()
	testPerson := activePerson(t, replacementID)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		personRepo.On("Get", ctx, replacementID).Return(testPerson, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, mock.AnythingOfType("*order.Order"), order.Assigned).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignDeliveryPersonCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// status and original assignment timestamp survive the swap
	assert.Equal(t, order.Assigned, testOrder.Status())
	assert.Equal(t, originalAssignedAt, testOrder.AssignedAt())
	require.NotNil(t, testOrder.DeliveryPerson())
	assert.True(t, testOrder.DeliveryPerson().IsEqual(replacementID))

	orderRepo.AssertExpectations(t)
	personRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReassignDeliveryPersonCommandHandler_Handle_NoAssignment(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	replacementID := kernel.NewUUID()

	cmd, err := commands.NewReassignDeliveryPersonCommand(orderID, replacementID)
	require.NoError(t, err)

	testOrder := confirmedOrder(t, orderID)
	testPerson := activePerson(t, replacementID)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		personRepo.On("Get", ctx, replacementID).Return(testPerson, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignDeliveryPersonCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, testOrder.DeliveryPerson())
}

func TestReassignDeliveryPersonCommandHandler_Handle_InactiveReplacement(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	replacementID := kernel.NewUUID()

	cmd, err := commands.NewReassignDeliveryPersonCommand(orderID, replacementID)
	require.NoError(t, err)

	testPerson := inactivePerson(t, replacementID)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		personRepo.On("Get", ctx, replacementID).Return(testPerson, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignDeliveryPersonCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInactivePerson)
	require.Contains(t, err.Error(), replacementID.String())
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestReassignDeliveryPersonCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	originalID := kernel.NewUUID()
	replacementID := kernel.NewUUID()

	cmd, err := commands.NewReassignDeliveryPersonCommand(orderID, replacementID)
	require.NoError(t, err)

	testOrder := completedOrder(t, orderID, originalID)
	testPerson := activePerson(t, replacementID)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		personRepo.On("Get", ctx, replacementID).Return(testPerson, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignDeliveryPersonCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrOrderTerminal)
	require.NotNil(t, testOrder.DeliveryPerson())
	assert.True(t, testOrder.DeliveryPerson().IsEqual(originalID))
}
