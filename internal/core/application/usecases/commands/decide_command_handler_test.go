package commands_test

import (
	"testing"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func TestDecideCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDecideCommand(1, 0, "w1", ports.DecisionReject)
	require.NoError(t, err)

	dispatcher := new(MockDispatcher)
	dispatcher.On("Decide", ctx, cmd.Token(), ports.DecisionReject).Return(nil).Once()

	h := commands.NewDecideCommandHandler(dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))
	dispatcher.AssertExpectations(t)
}

func TestDecideCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DecideCommand{} // not constructed properly

	dispatcher := new(MockDispatcher)
	h := commands.NewDecideCommandHandler(dispatcher)

	require.Error(t, h.Handle(ctx, cmd))
	dispatcher.AssertNotCalled(t, "Decide")
}

func TestDecideCommandHandler_Handle_StaleDecision(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDecideCommand(1, 0, "w1", ports.DecisionAccept)
	require.NoError(t, err)

	dispatcher := new(MockDispatcher)
	dispatcher.On("Decide", ctx, cmd.Token(), ports.DecisionAccept).
		Return(engine.ErrStaleDecision).Once()

	h := commands.NewDecideCommandHandler(dispatcher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, engine.ErrStaleDecision)
	dispatcher.AssertExpectations(t)
}
