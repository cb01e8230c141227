package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
)

func TestNewConsumerActor(t *testing.T) {
	t.Run("valid consumer", func(t *testing.T) {
		userID := kernel.NewUUID()

		actor, err := account.NewConsumerActor(userID)
		require.NoError(t, err)
		require.NoError(t, actor.Validate())

		assert.Equal(t, account.RoleConsumer, actor.Role())
		assert.True(t, actor.IsUser(userID))
		assert.Nil(t, actor.ProducerID())
	})

	t.Run("invalid user id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := account.NewConsumerActor(zero)
		require.Error(t, err)
	})
}

func TestNewProducerActor(t *testing.T) {
	t.Run("valid producer", func(t *testing.T) {
		userID := kernel.NewUUID()
		producerID := kernel.NewUUID()

		actor, err := account.NewProducerActor(userID, producerID)
		require.NoError(t, err)
		require.NoError(t, actor.Validate())

		assert.Equal(t, account.RoleProducer, actor.Role())
		assert.True(t, actor.ActsForProducer(producerID))
		assert.False(t, actor.ActsForProducer(kernel.NewUUID()))
	})

	t.Run("missing producer profile", func(t *testing.T) {
		var zero kernel.UUID
		_, err := account.NewProducerActor(kernel.NewUUID(), zero)
		require.ErrorIs(t, err, account.ErrProducerProfileRequired)
	})
}

func TestActor_Validate(t *testing.T) {
	var actor account.Actor // zero value
	require.ErrorIs(t, actor.Validate(), account.ErrActorIsNotConstructed)
}

func TestActor_ActsForProducer_ConsumerNever(t *testing.T) {
	actor, err := account.NewConsumerActor(kernel.NewUUID())
	require.NoError(t, err)
	assert.False(t, actor.ActsForProducer(kernel.NewUUID()))
}

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    account.Role
		wantErr bool
	}{
		{input: "consumer", want: account.RoleConsumer},
		{input: "producer", want: account.RoleProducer},
		{input: "admin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := account.RoleFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, account.RoleConsumer.Validate())
	require.NoError(t, account.RoleProducer.Validate())
	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "consumer", account.RoleConsumer.String())
	assert.Equal(t, "producer", account.RoleProducer.String())
	assert.Equal(t, "unknown", account.Role(42).String())
}
