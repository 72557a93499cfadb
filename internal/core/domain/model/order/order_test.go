package order_test

import (
	"testing"
	"time"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderArgs() (kernel.UUID, kernel.UUID, string, string, []string, time.Time) {
	return kernel.NewUUID(), kernel.NewUUID(), "John Doe", "123 Main St",
		[]string{"Burger", "Fries"}, time.Now()
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id, customerID, name, address, items, createdAt := validOrderArgs()

		o, err := order.NewOrder(id, customerID, name, address, items, createdAt)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, name, o.CustomerName())
		assert.Equal(t, address, o.DeliveryAddress())
		assert.Equal(t, items, o.Items())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		_, customerID, name, address, items, createdAt := validOrderArgs()
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, customerID, name, address, items, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		id, _, name, address, items, createdAt := validOrderArgs()
		var invalidCustomerID kernel.UUID

		o, err := order.NewOrder(id, invalidCustomerID, name, address, items, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		id, customerID, _, address, items, createdAt := validOrderArgs()

		o, err := order.NewOrder(id, customerID, "", address, items, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		id, customerID, name, _, items, createdAt := validOrderArgs()

		o, err := order.NewOrder(id, customerID, name, "", items, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		id, customerID, name, address, _, createdAt := validOrderArgs()

		o, err := order.NewOrder(id, customerID, name, address, nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		id, customerID, name, address, items, _ := validOrderArgs()

		o, err := order.NewOrder(id, customerID, name, address, items, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrTimestampIsRequired)
	})

	t.Run("should report every validation failure at once", func(t *testing.T) {
		var invalidID, invalidCustomerID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidCustomerID, "", "", nil, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "deliveryAddress")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "timestamp")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores order in any valid status", func(t *testing.T) {
		id, customerID, name, address, items, createdAt := validOrderArgs()

		for _, status := range []order.Status{order.Pending, order.Accepted, order.PickedUp, order.Delivered} {
			o, err := order.RestoreOrder(id, customerID, name, address, items, status, createdAt)

			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		id, customerID, name, address, items, createdAt := validOrderArgs()

		o, err := order.RestoreOrder(id, customerID, name, address, items, order.Unknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order passes", func(t *testing.T) {
		id, customerID, name, address, items, createdAt := validOrderArgs()
		o, err := order.NewOrder(id, customerID, name, address, items, createdAt)
		require.NoError(t, err)

		require.NoError(t, o.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		id, customerID, name, address, items, createdAt := validOrderArgs()
		o, err := order.NewOrder(id, customerID, name, address, items, createdAt)
		require.NoError(t, err)
		return o
	}

	t.Run("full forward sequence succeeds", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())

		require.NoError(t, o.MarkPickedUp())
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cannot complete before pickup", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Complete()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot pick up before acceptance", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.MarkPickedUp()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot accept twice", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())

		err := o.Accept()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("completing a delivered order fails and keeps status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPickedUp())
		require.NoError(t, o.Complete())

		err := o.Complete()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_UpdateDeliveryDetails(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		id, customerID, name, address, items, createdAt := validOrderArgs()
		o, err := order.NewOrder(id, customerID, name, address, items, createdAt)
		require.NoError(t, err)
		return o
	}

	t.Run("updates details while pending", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateDeliveryDetails("Jane Doe", "456 Oak Avenue")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", o.CustomerName())
		assert.Equal(t, "456 Oak Avenue", o.DeliveryAddress())
	})

	t.Run("rejects updates after acceptance", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())

		err := o.UpdateDeliveryDetails("Jane Doe", "456 Oak Avenue")

		require.ErrorIs(t, err, order.ErrOrderAlreadyDispatched)
		assert.Equal(t, "John Doe", o.CustomerName())
	})

	t.Run("rejects empty values", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.UpdateDeliveryDetails("", "456 Oak Avenue"))
		require.Error(t, o.UpdateDeliveryDetails("Jane Doe", ""))
	})
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	id, customerID, name, address, _, createdAt := validOrderArgs()
	items := []string{"Burger"}

	o, err := order.NewOrder(id, customerID, name, address, items, createdAt)
	require.NoError(t, err)

	items[0] = "mutated"
	assert.Equal(t, []string{"Burger"}, o.Items())

	got := o.Items()
	got[0] = "mutated"
	assert.Equal(t, []string{"Burger"}, o.Items())
}
