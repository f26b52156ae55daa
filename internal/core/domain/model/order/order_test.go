package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func mustDropLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(-23.5505, -46.6333)
	require.NoError(t, err)
	return loc
}

func mustPrice(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"#1042", "Paula Reis", "Rua Augusta, 900",
		mustDropLocation(t), mustPrice(t, 4500), testCreatedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_without_courier", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Empty(t, o.Rationale())
		assert.Equal(t, "#1042", o.Number())
		assert.Equal(t, "Paula Reis", o.ClientName())
		assert.Equal(t, int64(4500), o.Price().Cents())
	})

	t.Run("rejects_missing_required_fields", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"", "", "",
			mustDropLocation(t), mustPrice(t, 4500), testCreatedAt,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrNumberIsRequired)
		require.ErrorIs(t, err, order.ErrClientNameIsRequired)
		require.ErrorIs(t, err, order.ErrAddressIsRequired)
	})

	t.Run("rejects_invalid_store", func(t *testing.T) {
		var storeID kernel.UUID

		_, err := order.NewOrder(
			kernel.NewUUID(), storeID,
			"#1042", "Paula Reis", "Rua Augusta, 900",
			mustDropLocation(t), mustPrice(t, 4500), testCreatedAt,
		)

		require.Error(t, err)
	})

	t.Run("rejects_zero_created_at", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"#1042", "Paula Reis", "Rua Augusta, 900",
			mustDropLocation(t), mustPrice(t, 4500), time.Time{},
		)

		require.Error(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full_forward_path", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(courierID, "closest courier to the store"))
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Equal(t, "closest courier to the store", o.Rationale())

		require.NoError(t, o.Accept())
		assert.Equal(t, order.InRoute, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("courier_binding_is_write_once", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Assign(first, ""))

		err := o.Assign(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.True(t, o.Courier().IsEqual(first))
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("cannot_accept_pending_order", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.Accept())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot_complete_before_in_route", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.Complete())

		require.NoError(t, o.Assign(kernel.NewUUID(), ""))
		require.Error(t, o.Complete())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID(), ""))
		require.NoError(t, o.Accept())
		require.NoError(t, o.Complete())

		require.Error(t, o.Accept())
		require.Error(t, o.Complete())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("assign_rejects_invalid_courier", func(t *testing.T) {
		o := newTestOrder(t)
		var courierID kernel.UUID

		require.Error(t, o.Assign(courierID, ""))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_in_route_order", func(t *testing.T) {
		courierID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"#1043", "Diego Alves", "Av. Paulista, 1578",
			mustDropLocation(t), mustPrice(t, 7800),
			order.InRoute, &courierID, "voice command", testCreatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.InRoute, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Equal(t, "voice command", o.Rationale())
	})

	t.Run("rejects_pending_order_with_courier", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"#1043", "Diego Alves", "Av. Paulista, 1578",
			mustDropLocation(t), mustPrice(t, 7800),
			order.Pending, &courierID, "", testCreatedAt,
		)

		require.Error(t, err)
	})

	t.Run("rejects_assigned_order_without_courier", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			"#1043", "Diego Alves", "Av. Paulista, 1578",
			mustDropLocation(t), mustPrice(t, 7800),
			order.Accepted, nil, "", testCreatedAt,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
