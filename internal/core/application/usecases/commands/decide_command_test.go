package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecideCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewDecideCommand(1, 0, "w1", ports.DecisionAccept)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, ports.DecisionToken{OrderID: 1, Cursor: 0, WorkerID: "w1"}, cmd.Token())
		assert.Equal(t, ports.DecisionAccept, cmd.Decision())
	})

	t.Run("rejects_non_positive_order_id", func(t *testing.T) {
		_, err := commands.NewDecideCommand(0, 0, "w1", ports.DecisionAccept)

		require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})

	t.Run("rejects_negative_cursor", func(t *testing.T) {
		_, err := commands.NewDecideCommand(1, -1, "w1", ports.DecisionReject)

		require.Error(t, err)
	})

	t.Run("rejects_empty_worker_id", func(t *testing.T) {
		_, err := commands.NewDecideCommand(1, 0, "", ports.DecisionAccept)

		require.Error(t, err)
	})

	t.Run("rejects_unknown_decision", func(t *testing.T) {
		_, err := commands.NewDecideCommand(1, 0, "w1", ports.DecisionUnknown)

		require.Error(t, err)
	})

	t.Run("zero_value_command_is_invalid", func(t *testing.T) {
		var cmd commands.DecideCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrDecideCommandIsNotConstructed)
	})
}
