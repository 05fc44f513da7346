package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/deliveryperson"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixtureBase = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func testAddress() order.Address {
	return order.Address{Street: "12 Baker Street", City: "London", ZipCode: "NW1"}
}

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "ORD-1001", "Alex Carter", testAddress(), 42.50, nil)
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "ORD-1001", "Alex Carter", testAddress(), 42.50, nil,
		order.Confirmed, nil, nil, nil, nil, nil, order.Annotations{})
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, id, personID kernel.UUID) *order.Order {
	t.Helper()
	assignedAt := fixtureBase
	o, err := order.RestoreOrder(id, "ORD-1001", "Alex Carter", testAddress(), 42.50, nil,
		order.Assigned, &personID, &assignedAt, nil, nil, nil, order.Annotations{})
	require.NoError(t, err)
	return o
}

func completedOrder(t *testing.T, id, personID kernel.UUID) *order.Order {
	t.Helper()
	assignedAt := fixtureBase
	shippedAt := fixtureBase.Add(time.Hour)
	deliveredAt := fixtureBase.Add(2 * time.Hour)
	completedAt := fixtureBase.Add(3 * time.Hour)
	o, err := order.RestoreOrder(id, "ORD-1001", "Alex Carter", testAddress(), 42.50, nil,
		order.Completed, &personID, &assignedAt, &shippedAt, &deliveredAt, &completedAt, order.Annotations{})
	require.NoError(t, err)
	return o
}

func activePerson(t *testing.T, id kernel.UUID) *deliveryperson.DeliveryPerson {
	t.Helper()
	p, err := deliveryperson.NewDeliveryPerson(id, "Jamie Fox", "+1-555-0101")
	require.NoError(t, err)
	return p
}

func inactivePerson(t *testing.T, id kernel.UUID) *deliveryperson.DeliveryPerson {
	t.Helper()
	p, err := deliveryperson.RestoreDeliveryPerson(id, "Jamie Fox", "+1-555-0101", false)
	require.NoError(t, err)
	return p
}
