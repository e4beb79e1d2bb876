package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetPoolStatusQueryHandler projects the worker pool into read models:
// dispatch order first, root worker last.
type GetPoolStatusQueryHandler struct {
	pool ports.WorkerPool
}

// NewGetPoolStatusQueryHandler creates a handler for pool status queries.
func NewGetPoolStatusQueryHandler(pool ports.WorkerPool) GetPoolStatusQueryHandler {
	return GetPoolStatusQueryHandler{pool: pool}
}

// Handle executes the query. Workers that have never been online report no
// last-online time.
func (h GetPoolStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPoolStatusQuery,
) ([]GetPoolStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses, err := h.pool.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetPoolStatusQueryResponse, 0, len(statuses))
	for _, s := range statuses {
		response := GetPoolStatusQueryResponse{
			WorkerID:     string(s.ID),
			Role:         s.Role.String(),
			Availability: s.Availability.String(),
		}
		if !s.LastOnlineAt.IsZero() {
			lastOnline := s.LastOnlineAt
			response.LastOnlineAt = &lastOnline
		}
		responses = append(responses, response)
	}

	return responses, nil
}
