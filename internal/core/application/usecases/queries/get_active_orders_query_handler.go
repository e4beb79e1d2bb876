package queries

import (
	"context"

	"dispatch/internal/core/application/engine"
)

// OrderViewer is the engine surface the read side needs: a projection of the
// live orders.
type OrderViewer interface {
	ActiveOrders(ctx context.Context) []engine.ActiveOrder
}

// GetActiveOrdersQueryHandler projects the live order set into read models.
// Live orders exist only in engine memory, so the handler reads the engine
// directly instead of a database.
type GetActiveOrdersQueryHandler struct {
	viewer OrderViewer
}

// NewGetActiveOrdersQueryHandler creates a handler for live order queries.
func NewGetActiveOrdersQueryHandler(viewer OrderViewer) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{viewer: viewer}
}

// Handle executes the query. Orders are returned in id order; the attempt
// field is the one-based position of the current assignment within the
// order's eligibility snapshot.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	live := h.viewer.ActiveOrders(ctx)

	responses := make([]GetActiveOrdersQueryResponse, 0, len(live))
	for _, o := range live {
		responses = append(responses, GetActiveOrdersQueryResponse{
			OrderID:        o.ID,
			Status:         o.Status.String(),
			CustomerName:   o.CustomerName,
			Address:        o.Address,
			Total:          o.Total,
			PaymentMode:    o.PaymentMode.String(),
			AssignedWorker: string(o.AssignedWorker),
			Attempt:        o.Cursor + 1,
			EligibleCount:  o.EligibleCount,
		})
	}

	return responses, nil
}
