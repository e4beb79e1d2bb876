package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAmount(t *testing.T) kernel.Amount {
	t.Helper()
	amount, err := kernel.NewAmount(400, 36)
	require.NoError(t, err)
	return amount
}

func TestNewCreateOrderCommand(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			customerID, "Alice", "12 High Street", "img-1", testAmount(t),
			order.CashOnDelivery, "", "",
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Alice", cmd.CustomerName())
		assert.Equal(t, "12 High Street", cmd.Address())
		assert.Equal(t, order.CashOnDelivery, cmd.PaymentMode())
	})

	t.Run("rejects_invalid_payload_fields", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			customerID, "", "12 High Street", "img-1", testAmount(t),
			order.CashOnDelivery, "", "",
		)

		require.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("rejects_prepaid_without_payment_details", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			customerID, "Alice", "12 High Street", "img-1", testAmount(t),
			order.Prepaid, "", "",
		)

		require.ErrorIs(t, err, order.ErrUPIHandleIsRequired)
	})

	t.Run("zero_value_command_is_invalid", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
