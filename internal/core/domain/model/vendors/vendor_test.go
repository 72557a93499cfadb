package vendors_test

import (
	"testing"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/vendors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVendor(t *testing.T) {
	t.Run("registers vendor pending approval", func(t *testing.T) {
		id := kernel.NewUUID()

		v, err := vendors.NewVendor(id, "Warung Selera", "https://cdn.example.com/certs/wselera.pdf")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(id))
		assert.Equal(t, "Warung Selera", v.Name())
		assert.Equal(t, vendors.PendingApproval, v.Status())
		assert.False(t, v.IsApproved())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		v, err := vendors.NewVendor(kernel.NewUUID(), "", "https://cdn.example.com/cert.pdf")

		require.ErrorIs(t, err, vendors.ErrNameIsRequired)
		assert.Nil(t, v)
	})

	t.Run("rejects missing certification document", func(t *testing.T) {
		v, err := vendors.NewVendor(kernel.NewUUID(), "Warung Selera", "")

		require.ErrorIs(t, err, vendors.ErrCertificationURLIsRequired)
		assert.Nil(t, v)
	})
}

func TestVendor_Review(t *testing.T) {
	newPendingVendor := func(t *testing.T) *vendors.Vendor {
		t.Helper()
		v, err := vendors.NewVendor(kernel.NewUUID(), "Warung Selera", "https://cdn.example.com/cert.pdf")
		require.NoError(t, err)
		return v
	}

	t.Run("approve pending application", func(t *testing.T) {
		v := newPendingVendor(t)

		require.NoError(t, v.Approve())
		assert.Equal(t, vendors.Approved, v.Status())
		assert.True(t, v.IsApproved())
	})

	t.Run("reject pending application", func(t *testing.T) {
		v := newPendingVendor(t)

		require.NoError(t, v.Reject())
		assert.Equal(t, vendors.Rejected, v.Status())
		assert.False(t, v.IsApproved())
	})

	t.Run("approved application cannot be re-reviewed", func(t *testing.T) {
		v := newPendingVendor(t)
		require.NoError(t, v.Approve())

		require.ErrorIs(t, v.Approve(), vendors.ErrVendorAlreadyReviewed)
		require.ErrorIs(t, v.Reject(), vendors.ErrVendorAlreadyReviewed)
		assert.Equal(t, vendors.Approved, v.Status())
	})

	t.Run("rejected application cannot be re-reviewed", func(t *testing.T) {
		v := newPendingVendor(t)
		require.NoError(t, v.Reject())

		require.ErrorIs(t, v.Approve(), vendors.ErrVendorAlreadyReviewed)
		assert.Equal(t, vendors.Rejected, v.Status())
	})
}

func TestApprovalStatusFromString(t *testing.T) {
	t.Run("round trips valid statuses", func(t *testing.T) {
		for _, s := range []vendors.ApprovalStatus{vendors.PendingApproval, vendors.Approved, vendors.Rejected} {
			parsed, err := vendors.ApprovalStatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := vendors.ApprovalStatusFromString("Banned")
		require.Error(t, err)

		_, err = vendors.ApprovalStatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestVendor_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var v vendors.Vendor

		require.ErrorIs(t, v.Validate(), vendors.ErrVendorIsNotConstructed)
	})
}
