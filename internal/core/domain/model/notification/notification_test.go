package notification_test

import (
	"testing"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected notification.Type
	}{
		{"new_order", notification.TypeNewOrder},
		{"order_update", notification.TypeOrderUpdate},
		{"general_info", notification.TypeGeneralInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := notification.TypeFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}

	t.Run("should fail for unknown string", func(t *testing.T) {
		kind, err := notification.TypeFromString("promo")

		require.Error(t, err)
		assert.Equal(t, notification.TypeUnknown, kind)
	})
}

func TestNewNotification(t *testing.T) {
	id := kernel.NewUUID()
	recipientID := kernel.NewUUID()

	t.Run("should create valid unread notification", func(t *testing.T) {
		n, err := notification.NewNotification(id, recipientID,
			"You have received a new order.", notification.TypeNewOrder,
			"/producer/orders/42")

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, n.ID().IsEqual(id))
		assert.True(t, n.RecipientID().IsEqual(recipientID))
		assert.Equal(t, "You have received a new order.", n.Message())
		assert.Equal(t, notification.TypeNewOrder, n.Kind())
		assert.False(t, n.IsRead())
		assert.Equal(t, "/producer/orders/42", n.RelatedURL())
	})

	t.Run("should allow empty related URL", func(t *testing.T) {
		n, err := notification.NewNotification(id, recipientID,
			"Welcome!", notification.TypeGeneralInfo, "")

		require.NoError(t, err)
		assert.Empty(t, n.RelatedURL())
	})

	t.Run("should fail with invalid recipient ID", func(t *testing.T) {
		var invalidID kernel.UUID

		n, err := notification.NewNotification(id, invalidID,
			"message", notification.TypeGeneralInfo, "")

		require.Error(t, err)
		assert.Nil(t, n)
	})

	t.Run("should fail with empty message", func(t *testing.T) {
		n, err := notification.NewNotification(id, recipientID,
			"", notification.TypeGeneralInfo, "")

		require.Error(t, err)
		assert.Nil(t, n)
		assert.Contains(t, err.Error(), "message")
	})

	t.Run("should fail with invalid type", func(t *testing.T) {
		n, err := notification.NewNotification(id, recipientID,
			"message", notification.TypeUnknown, "")

		require.Error(t, err)
		assert.Nil(t, n)
	})
}

func TestNotification_ReadFlag(t *testing.T) {
	newNotification := func(t *testing.T) *notification.Notification {
		t.Helper()
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
			"message", notification.TypeOrderUpdate, "")
		require.NoError(t, err)
		return n
	}

	t.Run("should mark read and back to unread", func(t *testing.T) {
		n := newNotification(t)

		n.MarkRead()
		assert.True(t, n.IsRead())

		n.MarkUnread()
		assert.False(t, n.IsRead())
	})

	t.Run("marking read twice stays read", func(t *testing.T) {
		n := newNotification(t)

		n.MarkRead()
		n.MarkRead()

		assert.True(t, n.IsRead())
	})
}

func TestNotification_IsAddressedTo(t *testing.T) {
	recipientID := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), recipientID,
		"message", notification.TypeGeneralInfo, "")
	require.NoError(t, err)

	assert.True(t, n.IsAddressedTo(recipientID))
	assert.False(t, n.IsAddressedTo(kernel.NewUUID()))
}

func TestNotification_Validate(t *testing.T) {
	t.Run("should fail validation for nil notification", func(t *testing.T) {
		var n *notification.Notification

		err := n.Validate()

		require.Error(t, err)
		assert.Equal(t, notification.ErrNotificationIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value notification", func(t *testing.T) {
		var n notification.Notification

		err := n.Validate()

		require.Error(t, err)
	})
}
