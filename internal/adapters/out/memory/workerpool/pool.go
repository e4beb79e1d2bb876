// Package workerpool provides the in-memory implementation of the
// ports.WorkerPool contract. Pool membership is process state: workers come
// and go over the process lifetime and nothing about them needs to survive a
// restart, so a mutex-guarded map is the whole store.
package workerpool

import (
	"context"
	"sort"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Pool is an in-memory worker registry safe for concurrent use.
type Pool struct {
	mu      sync.RWMutex
	workers map[worker.ID]*worker.Worker
	rootID  worker.ID
	now     func() time.Time
}

// NewPool creates a pool with the root worker pre-registered. The root worker
// is excluded from dispatch and protected from deregistration.
func NewPool(rootID worker.ID) (*Pool, error) {
	return newPool(rootID, time.Now)
}

func newPool(rootID worker.ID, now func() time.Time) (*Pool, error) {
	if err := rootID.Validate(); err != nil {
		return nil, err
	}

	root, err := worker.NewWorker(rootID, worker.RoleRoot)
	if err != nil {
		return nil, err
	}

	return &Pool{
		workers: map[worker.ID]*worker.Worker{rootID: root},
		rootID:  rootID,
		now:     now,
	}, nil
}

// Register adds a worker to the pool. Re-registering a known worker preserves
// its current availability and role.
func (p *Pool) Register(_ context.Context, id worker.ID, role worker.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.workers[id]; ok {
		return nil
	}

	w, err := worker.NewWorker(id, role)
	if err != nil {
		return err
	}

	p.workers[id] = w
	return nil
}

// Deregister removes a worker from the pool.
func (p *Pool) Deregister(_ context.Context, id worker.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if id == p.rootID {
		return ports.ErrProtectedWorker
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.workers[id]; !ok {
		return errs.NewObjectNotFoundError("worker", id)
	}

	delete(p.workers, id)
	return nil
}

// SetAvailability flips a worker online or offline, stamping the priority key
// on each offline-to-online transition.
func (p *Pool) SetAvailability(_ context.Context, id worker.ID, availability worker.Availability) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	w, ok := p.workers[id]
	if !ok {
		return errs.NewObjectNotFoundError("worker", id)
	}

	return w.SetAvailability(availability, p.now())
}

// EligibleOrdered returns the dispatchable workers, longest-online first.
func (p *Pool) EligibleOrdered(_ context.Context) ([]worker.ID, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	eligible := make([]*worker.Worker, 0, len(p.workers))
	for _, w := range p.workers {
		if w.IsDispatchable() {
			eligible = append(eligible, w)
		}
	}

	sortByPriority(eligible)

	ids := make([]worker.ID, 0, len(eligible))
	for _, w := range eligible {
		ids = append(ids, w.ID())
	}
	return ids, nil
}

// Snapshot returns the status of every pool member, root last.
func (p *Pool) Snapshot(_ context.Context) ([]ports.WorkerStatus, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	members := make([]*worker.Worker, 0, len(p.workers))
	for _, w := range p.workers {
		members = append(members, w)
	}

	sortByPriority(members)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Role() != worker.RoleRoot && members[j].Role() == worker.RoleRoot
	})

	statuses := make([]ports.WorkerStatus, 0, len(members))
	for _, w := range members {
		statuses = append(statuses, ports.WorkerStatus{
			ID:           w.ID(),
			Role:         w.Role(),
			Availability: w.Availability(),
			LastOnlineAt: w.LastOnlineAt(),
		})
	}
	return statuses, nil
}

func sortByPriority(workers []*worker.Worker) {
	sort.Slice(workers, func(i, j int) bool {
		if !workers[i].LastOnlineAt().Equal(workers[j].LastOnlineAt()) {
			return workers[i].LastOnlineAt().Before(workers[j].LastOnlineAt())
		}
		return workers[i].ID() < workers[j].ID()
	})
}
