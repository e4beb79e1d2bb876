package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload(t *testing.T) order.Payload {
	t.Helper()
	payload, err := order.NewPayload(
		kernel.NewUUID(), "Alice", "12 High Street", "img-1", validAmount(t),
		order.CashOnDelivery, "", "",
	)
	require.NoError(t, err)
	return payload
}

func newPendingOrder(t *testing.T, workers ...worker.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, validPayload(t), workers)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_assigned_to_first_worker", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")

		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.Cursor())
		assert.Equal(t, []worker.ID{"w1", "w2"}, o.EligibleWorkers())

		assigned, ok := o.AssignedWorker()
		require.True(t, ok)
		assert.Equal(t, worker.ID("w1"), assigned)
	})

	t.Run("copies_the_eligibility_snapshot", func(t *testing.T) {
		workers := []worker.ID{"w1", "w2"}
		o, err := order.NewOrder(1, validPayload(t), workers)
		require.NoError(t, err)

		workers[0] = "intruder"

		assert.Equal(t, []worker.ID{"w1", "w2"}, o.EligibleWorkers())
	})

	t.Run("rejects_non_positive_id", func(t *testing.T) {
		_, err := order.NewOrder(0, validPayload(t), []worker.ID{"w1"})
		require.Error(t, err)

		_, err = order.NewOrder(-5, validPayload(t), []worker.ID{"w1"})
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_payload", func(t *testing.T) {
		_, err := order.NewOrder(1, order.Payload{}, []worker.ID{"w1"})

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrPayloadIsNotConstructed)
	})

	t.Run("rejects_empty_snapshot", func(t *testing.T) {
		_, err := order.NewOrder(1, validPayload(t), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrEligibleWorkersRequired)
	})

	t.Run("rejects_snapshot_with_empty_worker_id", func(t *testing.T) {
		_, err := order.NewOrder(1, validPayload(t), []worker.ID{"w1", ""})

		require.Error(t, err)
		require.ErrorIs(t, err, worker.ErrIDIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("moves_assignment_to_next_worker", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")

		require.NoError(t, o.Advance())

		assert.Equal(t, 1, o.Cursor())
		assert.Equal(t, order.Pending, o.Status())
		assigned, ok := o.AssignedWorker()
		require.True(t, ok)
		assert.Equal(t, worker.ID("w2"), assigned)
	})

	t.Run("advancing_past_last_worker_exhausts_the_order", func(t *testing.T) {
		o := newPendingOrder(t, "w1")

		require.NoError(t, o.Advance())

		assert.True(t, o.Exhausted())
		_, ok := o.AssignedWorker()
		assert.False(t, ok)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cursor_never_exceeds_snapshot_length", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Advance())

		err := o.Advance()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrCursorExhausted)
		assert.Equal(t, 1, o.Cursor())
	})

	t.Run("accepted_order_cannot_advance", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")
		require.NoError(t, o.Accept())

		require.Error(t, o.Advance())
		assert.Equal(t, 0, o.Cursor())
	})
}

func TestOrder_MatchesCursor(t *testing.T) {
	t.Run("matches_current_assignment_while_pending", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")

		assert.True(t, o.MatchesCursor(0))
		assert.False(t, o.MatchesCursor(1))
	})

	t.Run("superseded_cursor_is_stale", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")
		require.NoError(t, o.Advance())

		assert.False(t, o.MatchesCursor(0))
		assert.True(t, o.MatchesCursor(1))
	})

	t.Run("no_cursor_matches_after_leaving_pending", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Accept())

		assert.False(t, o.MatchesCursor(0))
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("pending_order_can_be_accepted", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")

		require.NoError(t, o.Accept())

		assert.Equal(t, order.Accepted, o.Status())
		assigned, ok := o.AssignedWorker()
		require.True(t, ok)
		assert.Equal(t, worker.ID("w1"), assigned)
	})

	t.Run("accepting_twice_fails", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Accept())

		require.Error(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("accepted_order_can_be_completed", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Accept())

		require.NoError(t, o.Complete())

		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("pending_order_cannot_be_completed", func(t *testing.T) {
		o := newPendingOrder(t, "w1")

		require.Error(t, o.Complete())
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_FinalStates(t *testing.T) {
	t.Run("exhausted_order_can_be_rejected_by_all", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Advance())

		require.NoError(t, o.RejectAll())

		assert.Equal(t, order.RejectedByAll, o.Status())
	})

	t.Run("exhausted_order_can_expire", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Advance())

		require.NoError(t, o.Expire())

		assert.Equal(t, order.Expired, o.Status())
	})

	t.Run("order_with_remaining_workers_cannot_be_finalized", func(t *testing.T) {
		o := newPendingOrder(t, "w1", "w2")

		require.Error(t, o.RejectAll())
		require.Error(t, o.Expire())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("terminal_states_permit_no_further_mutation", func(t *testing.T) {
		o := newPendingOrder(t, "w1")
		require.NoError(t, o.Advance())
		require.NoError(t, o.Expire())

		require.Error(t, o.Accept())
		require.Error(t, o.Complete())
		require.Error(t, o.Advance())
		require.Error(t, o.RejectAll())
		assert.Equal(t, order.Expired, o.Status())
	})
}
