package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetArchivedOrdersQueryHandler reads finished orders from the archive
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedOrdersQueryHandler creates a handler for archive queries.
// Requires a GORM database connection for query execution.
func NewGetArchivedOrdersQueryHandler(db *gorm.DB) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db}
}

// Handle executes the query. Records come back newest first, capped at the
// query's limit.
func (h GetArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedOrdersQuery,
) ([]GetArchivedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	archived := make([]GetArchivedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_name,
			address,
			total,
			payment_mode,
			status,
			assigned_worker,
			finished_at
		FROM archived_orders
		ORDER BY finished_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetArchivedOrdersQueryResponse
		var status int

		err = rows.Scan(
			&record.OrderID,
			&record.CustomerName,
			&record.Address,
			&record.Total,
			&record.PaymentMode,
			&status,
			&record.AssignedWorker,
			&record.FinishedAt,
		)
		if err != nil {
			return nil, err
		}

		record.Status = order.Status(status).String()
		archived = append(archived, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return archived, nil
}
