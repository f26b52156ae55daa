package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return location
}

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	amount, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return amount
}

func testCourier(t *testing.T, name string, lat, lng float64) *courier.Courier {
	t.Helper()
	payPolicy, err := courier.NewFixedPayPolicy(testMoney(t, 850))
	require.NoError(t, err)

	c, err := courier.NewCourier(kernel.NewUUID(), name, testLocation(t, lat, lng), payPolicy)
	require.NoError(t, err)
	return c
}

func onlineCourier(t *testing.T, name string, lat, lng float64) *courier.Courier {
	t.Helper()
	c := testCourier(t, name, lat, lng)
	require.NoError(t, c.GoOnline())
	return c
}

func pendingOrder(t *testing.T, lat, lng float64, priceCents int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"ORD-100", "Alice Santos", "12 Main St",
		testLocation(t, lat, lng), testMoney(t, priceCents), time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func inRouteOrder(t *testing.T, courierID kernel.UUID, priceCents int64) *order.Order {
	t.Helper()
	o := pendingOrder(t, 5, 7, priceCents)
	require.NoError(t, o.Assign(courierID, "operator pick"))
	require.NoError(t, o.Accept())
	return o
}
