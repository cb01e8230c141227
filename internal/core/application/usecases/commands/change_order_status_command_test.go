package commands_test

import (
	"testing"

	"ricemarket/internal/core/application/usecases/commands"
	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor, err := account.NewProducerActor(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, order.ConfirmedByProducer)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, order.ConfirmedByProducer, cmd.Next())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	actor, _ := account.NewConsumerActor(kernel.NewUUID())

	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, actor, order.CancelledByConsumer)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeOrderStatusCommand_UnconstructedActor(t *testing.T) {
	var actor account.Actor

	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), actor, order.ConfirmedByProducer)

	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	actor, _ := account.NewConsumerActor(kernel.NewUUID())

	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), actor, order.Unknown)

	require.Error(t, err)
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
