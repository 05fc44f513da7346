package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/deliveryperson"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsOrderRepository struct{ mock.Mock }

func (m *MockStatsOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockStatsOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockStatsOrderRepository) UpdateInStatus(
	ctx context.Context,
	o *order.Order,
	expected order.Status,
) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockStatsOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockStatsOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockStatsOrderRepository) GetAllInStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockStatsOrderRepository) GetByDeliveryPerson(
	ctx context.Context,
	personID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStatsPersonRepository struct{ mock.Mock }

func (m *MockStatsPersonRepository) Add(ctx context.Context, p *deliveryperson.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStatsPersonRepository) Update(ctx context.Context, p *deliveryperson.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStatsPersonRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*deliveryperson.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryperson.DeliveryPerson), args.Error(1)
}

func (m *MockStatsPersonRepository) GetAll(ctx context.Context) ([]*deliveryperson.DeliveryPerson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliveryperson.DeliveryPerson), args.Error(1)
}

var statsBase = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func statsAddress() order.Address {
	return order.Address{Street: "12 Baker Street", City: "London", ZipCode: "NW1"}
}

func restoredOrder(
	t *testing.T,
	personID kernel.UUID,
	status order.Status,
	deliveryTime time.Duration,
) *order.Order {
	t.Helper()

	assignedAt := statsBase
	var deliveredAt, completedAt *time.Time
	if status == order.Delivered || status == order.Completed {
		d := statsBase.Add(deliveryTime)
		deliveredAt = &d
	}
	if status == order.Completed {
		c := statsBase.Add(deliveryTime + time.Hour)
		completedAt = &c
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Alex Carter", statsAddress(), 42.50, nil,
		status, &personID, &assignedAt, nil, deliveredAt, completedAt, order.Annotations{})
	require.NoError(t, err)
	return o
}

func statsPerson(t *testing.T, id kernel.UUID, name string) *deliveryperson.DeliveryPerson {
	t.Helper()
	p, err := deliveryperson.NewDeliveryPerson(id, name, "+1-555-0101")
	require.NoError(t, err)
	return p
}

func TestGetDeliveryPersonStatsQueryHandler_Handle_DerivesFigures(t *testing.T) {
	ctx := t.Context()
	personID := kernel.NewUUID()

	query, err := queries.NewGetDeliveryPersonStatsQuery(personID)
	require.NoError(t, err)

	orders := []*order.Order{
		restoredOrder(t, personID, order.Assigned, 0),
		restoredOrder(t, personID, order.Delivered, 2*time.Hour),
		restoredOrder(t, personID, order.Completed, 4*time.Hour),
	}

	orderRepo := new(MockStatsOrderRepository)
	personRepo := new(MockStatsPersonRepository)
	personRepo.On("Get", ctx, personID).Return(statsPerson(t, personID, "Jamie Fox"), nil).Once()
	orderRepo.On("GetByDeliveryPerson", ctx, personID).Return(orders, nil).Once()

	handler := queries.NewGetDeliveryPersonStatsQueryHandler(orderRepo, personRepo)
	resp, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "Jamie Fox", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 3, resp.TotalAssigned)
	assert.Equal(t, 2, resp.TotalDelivered)
	assert.Equal(t, 1, resp.TotalCompleted)
	assert.Equal(t, 33, resp.DeliveryRate)
	assert.Equal(t, 3*time.Hour, resp.AverageDeliveryTime)
}

func TestGetDeliveryPersonStatsQueryHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()
	personID := kernel.NewUUID()

	query, err := queries.NewGetDeliveryPersonStatsQuery(personID)
	require.NoError(t, err)

	orderRepo := new(MockStatsOrderRepository)
	personRepo := new(MockStatsPersonRepository)
	personRepo.On("Get", ctx, personID).Return(statsPerson(t, personID, "Jamie Fox"), nil).Once()
	orderRepo.On("GetByDeliveryPerson", ctx, personID).Return([]*order.Order{}, nil).Once()

	handler := queries.NewGetDeliveryPersonStatsQueryHandler(orderRepo, personRepo)
	resp, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalAssigned)
	assert.Equal(t, 0, resp.DeliveryRate)
	assert.Equal(t, time.Duration(0), resp.AverageDeliveryTime)
}

func TestGetDeliveryPersonStatsQueryHandler_Handle_UnknownPerson(t *testing.T) {
	ctx := t.Context()
	personID := kernel.NewUUID()

	query, err := queries.NewGetDeliveryPersonStatsQuery(personID)
	require.NoError(t, err)

	orderRepo := new(MockStatsOrderRepository)
	personRepo := new(MockStatsPersonRepository)
	personRepo.On("Get", ctx, personID).Return(nil, errs.ErrObjectNotFound).Once()

	handler := queries.NewGetDeliveryPersonStatsQueryHandler(orderRepo, personRepo)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "GetByDeliveryPerson", mock.Anything, mock.Anything)
}

func TestGetOverallStatsQueryHandler_Handle_AggregatesAcrossPersons(t *testing.T) {
	ctx := t.Context()
	aliceID := kernel.NewUUID()
	bobID := kernel.NewUUID()

	orders := []*order.Order{
		restoredOrder(t, aliceID, order.Completed, 2*time.Hour),
		restoredOrder(t, aliceID, order.Delivered, 4*time.Hour),
		restoredOrder(t, bobID, order.Assigned, 0),
	}
	persons := []*deliveryperson.DeliveryPerson{
		statsPerson(t, bobID, "Bob Wilson"),
		statsPerson(t, aliceID, "Alice Reed"),
	}

	orderRepo := new(MockStatsOrderRepository)
	personRepo := new(MockStatsPersonRepository)
	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()
	personRepo.On("GetAll", ctx).Return(persons, nil).Once()

	handler := queries.NewGetOverallStatsQueryHandler(orderRepo, personRepo)
	resp, err := handler.Handle(ctx, queries.NewGetOverallStatsQuery())

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalAssigned)
	assert.Equal(t, 2, resp.TotalDelivered)
	assert.Equal(t, 1, resp.TotalCompleted)
	assert.Equal(t, 33, resp.DeliveryRate)
	assert.Equal(t, 3*time.Hour, resp.AverageDeliveryTime)

	// rows sorted by name, every registered person present
	require.Len(t, resp.Persons, 2)
	assert.Equal(t, "Alice Reed", resp.Persons[0].Name)
	assert.Equal(t, 2, resp.Persons[0].TotalAssigned)
	assert.Equal(t, 50, resp.Persons[0].DeliveryRate)
	assert.Equal(t, "Bob Wilson", resp.Persons[1].Name)
	assert.Equal(t, 1, resp.Persons[1].TotalAssigned)
	assert.Equal(t, 0, resp.Persons[1].DeliveryRate)
}

func TestStatsProjection_RefreshAndRead(t *testing.T) {
	ctx := t.Context()
	personID := kernel.NewUUID()

	orders := []*order.Order{
		restoredOrder(t, personID, order.Completed, 2*time.Hour),
		restoredOrder(t, personID, order.Assigned, 0),
	}

	orderRepo := new(MockStatsOrderRepository)
	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()

	projection := queries.NewStatsProjection(orderRepo)
	assert.True(t, projection.RefreshedAt().IsZero())

	require.NoError(t, projection.Refresh(ctx))
	assert.False(t, projection.RefreshedAt().IsZero())

	overall := projection.Overall()
	assert.Equal(t, 2, overall.TotalAssigned)
	assert.Equal(t, 1, overall.TotalCompleted)

	stats, ok := projection.ForPerson(personID)
	require.True(t, ok)
	assert.Equal(t, 2, stats.TotalAssigned)
	assert.Equal(t, 50, stats.DeliveryRate)

	_, ok = projection.ForPerson(kernel.NewUUID())
	assert.False(t, ok)
}

func TestStatsProjection_RefreshError_KeepsSnapshot(t *testing.T) {
	ctx := t.Context()
	personID := kernel.NewUUID()

	orders := []*order.Order{restoredOrder(t, personID, order.Completed, time.Hour)}

	orderRepo := new(MockStatsOrderRepository)
	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()

	projection := queries.NewStatsProjection(orderRepo)
	require.NoError(t, projection.Refresh(ctx))
	refreshedAt := projection.RefreshedAt()

	orderRepo.On("GetAll", ctx).Return(nil, errs.ErrObjectNotFound).Once()
	require.Error(t, projection.Refresh(ctx))

	assert.Equal(t, refreshedAt, projection.RefreshedAt())
	assert.Equal(t, 1, projection.Overall().TotalCompleted)
}
