package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) CreateOrder(ctx context.Context, payload order.Payload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDispatcher) Decide(ctx context.Context, token ports.DecisionToken, decision ports.Decision) error {
	args := m.Called(ctx, token, decision)
	return args.Error(0)
}

func (m *MockDispatcher) Complete(ctx context.Context, orderID int64, detail string) error {
	args := m.Called(ctx, orderID, detail)
	return args.Error(0)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Alice", "12 High Street", "img-1", testAmount(t),
		order.CashOnDelivery, "", "",
	)
	require.NoError(t, err)

	dispatcher := new(MockDispatcher)
	dispatcher.On("CreateOrder", ctx, mock.AnythingOfType("order.Payload")).
		Return(int64(7), nil).Once()

	h := commands.NewCreateOrderCommandHandler(dispatcher)
	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, int64(7), orderID)
	dispatcher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	dispatcher := new(MockDispatcher)
	h := commands.NewCreateOrderCommandHandler(dispatcher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	dispatcher.AssertNotCalled(t, "CreateOrder")
}

func TestCreateOrderCommandHandler_Handle_NoWorkerAvailable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Alice", "12 High Street", "img-1", testAmount(t),
		order.CashOnDelivery, "", "",
	)
	require.NoError(t, err)

	dispatcher := new(MockDispatcher)
	dispatcher.On("CreateOrder", ctx, mock.AnythingOfType("order.Payload")).
		Return(int64(0), engine.ErrNoWorkerAvailable).Once()

	h := commands.NewCreateOrderCommandHandler(dispatcher)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, engine.ErrNoWorkerAvailable)
	dispatcher.AssertExpectations(t)
}
