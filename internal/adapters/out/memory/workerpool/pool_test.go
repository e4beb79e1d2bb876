package workerpool

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestPool(t *testing.T) (*Pool, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	pool, err := newPool("root", clock.Now)
	require.NoError(t, err)
	return pool, clock
}

func registerOnline(t *testing.T, pool *Pool, clock *fakeClock, ids ...worker.ID) {
	t.Helper()
	ctx := context.Background()
	for _, id := range ids {
		require.NoError(t, pool.Register(ctx, id, worker.RoleRegular))
		require.NoError(t, pool.SetAvailability(ctx, id, worker.Online))
		clock.Advance(time.Minute)
	}
}

func TestNewPool(t *testing.T) {
	t.Run("pre_registers_root_worker", func(t *testing.T) {
		pool, _ := newTestPool(t)

		statuses, err := pool.Snapshot(context.Background())

		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, worker.ID("root"), statuses[0].ID)
		assert.Equal(t, worker.RoleRoot, statuses[0].Role)
		assert.Equal(t, worker.Offline, statuses[0].Availability)
	})

	t.Run("rejects_empty_root_id", func(t *testing.T) {
		_, err := NewPool("")

		require.Error(t, err)
	})
}

func TestPool_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers_new_worker_offline", func(t *testing.T) {
		pool, _ := newTestPool(t)

		require.NoError(t, pool.Register(ctx, "w1", worker.RoleRegular))

		eligible, err := pool.EligibleOrdered(ctx)
		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("re_registering_preserves_availability", func(t *testing.T) {
		pool, clock := newTestPool(t)
		registerOnline(t, pool, clock, "w1")

		require.NoError(t, pool.Register(ctx, "w1", worker.RoleRegular))

		eligible, err := pool.EligibleOrdered(ctx)
		require.NoError(t, err)
		assert.Equal(t, []worker.ID{"w1"}, eligible)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		pool, _ := newTestPool(t)

		require.Error(t, pool.Register(ctx, "w1", worker.RoleUnknown))
	})
}

func TestPool_Deregister(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_worker", func(t *testing.T) {
		pool, clock := newTestPool(t)
		registerOnline(t, pool, clock, "w1")

		require.NoError(t, pool.Deregister(ctx, "w1"))

		eligible, err := pool.EligibleOrdered(ctx)
		require.NoError(t, err)
		assert.Empty(t, eligible)
	})

	t.Run("unknown_worker_is_not_found", func(t *testing.T) {
		pool, _ := newTestPool(t)

		err := pool.Deregister(ctx, "ghost")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("root_worker_is_protected", func(t *testing.T) {
		pool, _ := newTestPool(t)

		err := pool.Deregister(ctx, "root")

		require.ErrorIs(t, err, ports.ErrProtectedWorker)
	})
}

func TestPool_SetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown_worker_is_not_found", func(t *testing.T) {
		pool, _ := newTestPool(t)

		err := pool.SetAvailability(ctx, "ghost", worker.Online)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("offline_worker_leaves_eligibility", func(t *testing.T) {
		pool, clock := newTestPool(t)
		registerOnline(t, pool, clock, "w1", "w2")

		require.NoError(t, pool.SetAvailability(ctx, "w1", worker.Offline))

		eligible, err := pool.EligibleOrdered(ctx)
		require.NoError(t, err)
		assert.Equal(t, []worker.ID{"w2"}, eligible)
	})

	t.Run("going_offline_and_back_moves_worker_to_the_end", func(t *testing.T) {
		pool, clock := newTestPool(t)
		registerOnline(t, pool, clock, "w1", "w2")

		require.NoError(t, pool.SetAvailability(ctx, "w1", worker.Offline))
		clock.Advance(time.Minute)
		require.NoError(t, pool.SetAvailability(ctx, "w1", worker.Online))

		eligible, err := pool.EligibleOrdered(ctx)
		require.NoError(t, err)
		assert.Equal(t, []worker.ID{"w2", "w1"}, eligible)
	})
}

func TestPool_EligibleOrdered(t *testing.T) {
	ctx := context.Background()

	t.Run("orders_by_earliest_online_time", func(t *testing.T) {
		pool, clock := newTestPool(t)
		registerOnline(t, pool, clock, "w2", "w3", "w1")

		eligible, err := pool.EligibleOrdered(ctx)

		require.NoError(t, err)
		assert.Equal(t, []worker.ID{"w2", "w3", "w1"}, eligible)
	})

	t.Run("breaks_ties_by_worker_id", func(t *testing.T) {
		pool, _ := newTestPool(t)
		require.NoError(t, pool.Register(ctx, "w2", worker.RoleRegular))
		require.NoError(t, pool.Register(ctx, "w1", worker.RoleRegular))
		require.NoError(t, pool.SetAvailability(ctx, "w2", worker.Online))
		require.NoError(t, pool.SetAvailability(ctx, "w1", worker.Online))

		eligible, err := pool.EligibleOrdered(ctx)

		require.NoError(t, err)
		assert.Equal(t, []worker.ID{"w1", "w2"}, eligible)
	})

	t.Run("root_worker_is_never_eligible", func(t *testing.T) {
		pool, _ := newTestPool(t)
		require.NoError(t, pool.SetAvailability(ctx, "root", worker.Online))

		eligible, err := pool.EligibleOrdered(ctx)

		require.NoError(t, err)
		assert.Empty(t, eligible)
	})
}

func TestPool_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("includes_all_members_with_root_last", func(t *testing.T) {
		pool, clock := newTestPool(t)
		registerOnline(t, pool, clock, "w1")
		require.NoError(t, pool.Register(ctx, "w2", worker.RoleRegular))

		statuses, err := pool.Snapshot(ctx)

		require.NoError(t, err)
		require.Len(t, statuses, 3)
		assert.Equal(t, worker.ID("root"), statuses[2].ID)

		byID := make(map[worker.ID]ports.WorkerStatus, len(statuses))
		for _, s := range statuses {
			byID[s.ID] = s
		}
		assert.Equal(t, worker.Online, byID["w1"].Availability)
		assert.False(t, byID["w1"].LastOnlineAt.IsZero())
		assert.Equal(t, worker.Offline, byID["w2"].Availability)
		assert.True(t, byID["w2"].LastOnlineAt.IsZero())
	})
}
