package reward_test

import (
	"testing"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/reward"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("starts with zero balance", func(t *testing.T) {
		customerID := kernel.NewUUID()

		account, err := reward.NewAccount(customerID)

		require.NoError(t, err)
		require.NoError(t, account.Validate())
		assert.True(t, account.CustomerID().IsEqual(customerID))
		assert.Equal(t, 0, account.Points())
	})

	t.Run("rejects invalid customer ID", func(t *testing.T) {
		var invalidID kernel.UUID

		account, err := reward.NewAccount(invalidID)

		require.Error(t, err)
		assert.Nil(t, account)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("restores existing balance", func(t *testing.T) {
		account, err := reward.RestoreAccount(kernel.NewUUID(), 30)

		require.NoError(t, err)
		assert.Equal(t, 30, account.Points())
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		account, err := reward.RestoreAccount(kernel.NewUUID(), -10)

		require.Error(t, err)
		assert.Nil(t, account)
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var account reward.Account

		require.ErrorIs(t, account.Validate(), reward.ErrAccountIsNotConstructed)
	})

	t.Run("nil account fails", func(t *testing.T) {
		var account *reward.Account

		require.ErrorIs(t, account.Validate(), reward.ErrAccountIsNotConstructed)
	})
}

func TestNewCredit(t *testing.T) {
	t.Run("creates standard delivery credit", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		credit, err := reward.NewCredit(orderID, customerID, reward.PointsPerDelivery)

		require.NoError(t, err)
		require.NoError(t, credit.Validate())
		assert.True(t, credit.OrderID().IsEqual(orderID))
		assert.True(t, credit.CustomerID().IsEqual(customerID))
		assert.Equal(t, 10, credit.Points())
	})

	t.Run("rejects non-positive points", func(t *testing.T) {
		_, err := reward.NewCredit(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.Error(t, err)

		_, err = reward.NewCredit(kernel.NewUUID(), kernel.NewUUID(), -5)
		require.Error(t, err)
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := reward.NewCredit(invalidID, kernel.NewUUID(), 10)
		require.Error(t, err)

		_, err = reward.NewCredit(kernel.NewUUID(), invalidID, 10)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var credit reward.Credit

		require.ErrorIs(t, credit.Validate(), reward.ErrCreditIsNotConstructed)
	})
}

func TestAccount_Apply(t *testing.T) {
	t.Run("applies credits to the balance", func(t *testing.T) {
		customerID := kernel.NewUUID()
		account, err := reward.NewAccount(customerID)
		require.NoError(t, err)

		credit, err := reward.NewCredit(kernel.NewUUID(), customerID, reward.PointsPerDelivery)
		require.NoError(t, err)

		require.NoError(t, account.Apply(credit))
		assert.Equal(t, 10, account.Points())

		second, err := reward.NewCredit(kernel.NewUUID(), customerID, reward.PointsPerDelivery)
		require.NoError(t, err)

		require.NoError(t, account.Apply(second))
		assert.Equal(t, 20, account.Points())
	})

	t.Run("rejects credit for a different customer", func(t *testing.T) {
		account, err := reward.NewAccount(kernel.NewUUID())
		require.NoError(t, err)

		credit, err := reward.NewCredit(kernel.NewUUID(), kernel.NewUUID(), 10)
		require.NoError(t, err)

		require.Error(t, account.Apply(credit))
		assert.Equal(t, 0, account.Points())
	})

	t.Run("rejects unconstructed credit", func(t *testing.T) {
		account, err := reward.NewAccount(kernel.NewUUID())
		require.NoError(t, err)

		require.ErrorIs(t, account.Apply(reward.Credit{}), reward.ErrCreditIsNotConstructed)
	})
}
