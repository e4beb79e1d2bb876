package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(5, "receipt-77")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, int64(5), cmd.OrderID())
		require.Equal(t, "receipt-77", cmd.Detail())
	})

	t.Run("detail_may_be_empty", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(5, "")

		require.NoError(t, err)
		require.Empty(t, cmd.Detail())
	})

	t.Run("rejects_non_positive_order_id", func(t *testing.T) {
		_, err := commands.NewCompleteOrderCommand(0, "receipt-77")

		require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteOrderCommand(5, "receipt-77")
	require.NoError(t, err)

	dispatcher := new(MockDispatcher)
	dispatcher.On("Complete", ctx, int64(5), "receipt-77").Return(nil).Once()

	h := commands.NewCompleteOrderCommandHandler(dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))
	dispatcher.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteOrderCommand{} // not constructed properly

	dispatcher := new(MockDispatcher)
	h := commands.NewCompleteOrderCommandHandler(dispatcher)

	require.Error(t, h.Handle(ctx, cmd))
	dispatcher.AssertNotCalled(t, "Complete")
}
