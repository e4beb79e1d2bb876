package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetPoolStatusQueryIsNotConstructed = errors.New(
	"GetPoolStatusQuery must be created via NewGetPoolStatusQuery constructor",
)

// GetPoolStatusQuery requests the status of every worker in the pool.
type GetPoolStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPoolStatusQuery creates a query for the pool status.
func NewGetPoolStatusQuery() GetPoolStatusQuery {
	return GetPoolStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPoolStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPoolStatusQueryIsNotConstructed)
}

// GetPoolStatusQueryResponse is the read model for one pool member.
type GetPoolStatusQueryResponse struct {
	WorkerID     string     `json:"worker_id"`
	Role         string     `json:"role"`
	Availability string     `json:"availability"`
	LastOnlineAt *time.Time `json:"last_online_at,omitempty"`
}
