package queries_test

import (
	"testing"

	"ricemarket/internal/core/application/usecases/queries"
	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, err := queries.NewGetProductsQuery(nil, nil)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Nil(t, query.ProducerID())
		assert.Nil(t, query.Near())
	})

	t.Run("with both filters", func(t *testing.T) {
		producerID := kernel.NewUUID()
		point, err := kernel.NewGeoPoint(34.07, 134.55)
		require.NoError(t, err)

		query, err := queries.NewGetProductsQuery(&producerID, &point)
		require.NoError(t, err)
		assert.True(t, query.ProducerID().IsEqual(producerID))
		nearEqual, err := query.Near().IsEqual(point)
		require.NoError(t, err)
		assert.True(t, nearEqual)
	})

	t.Run("invalid producer filter", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := queries.NewGetProductsQuery(&invalidID, nil)
		require.Error(t, err)
	})

	t.Run("unconstructed geo point", func(t *testing.T) {
		var invalidPoint kernel.GeoPoint
		_, err := queries.NewGetProductsQuery(nil, &invalidPoint)
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetProductsQuery
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetProductsQueryIsNotConstructed)
	})
}

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("consumer actor", func(t *testing.T) {
		actor, err := account.NewConsumerActor(kernel.NewUUID())
		require.NoError(t, err)

		query, err := queries.NewGetOrdersQuery(actor)
		require.NoError(t, err)
		assert.Equal(t, actor, query.Actor())
	})

	t.Run("unconstructed actor", func(t *testing.T) {
		var actor account.Actor
		_, err := queries.NewGetOrdersQuery(actor)
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrdersQuery
		require.Error(t, query.Validate())
	})
}

func TestNewGetNotificationsQuery(t *testing.T) {
	t.Run("valid recipient", func(t *testing.T) {
		recipientID := kernel.NewUUID()
		query, err := queries.NewGetNotificationsQuery(recipientID, true)
		require.NoError(t, err)
		assert.True(t, query.RecipientID().IsEqual(recipientID))
		assert.True(t, query.UnreadOnly())
	})

	t.Run("invalid recipient", func(t *testing.T) {
		_, err := queries.NewGetNotificationsQuery(kernel.UUID{}, false)
		require.Error(t, err)
	})
}
