// Package orderarchive provides the GORM-backed implementation of the order
// archive. Terminal orders leave engine memory and land here; the table is
// the durable trail for reporting and retention.
package orderarchive

import (
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ArchivedOrderDTO represents the database structure for persisting finished
// orders. The order id is the primary key; each order is archived exactly
// once.
type ArchivedOrderDTO struct {
	OrderID        int64  `gorm:"primaryKey;autoIncrement:false"`
	CustomerID     string `gorm:"type:uuid;index"`
	CustomerName   string
	Address        string
	Total          float64
	PaymentMode    string
	Status         int
	AssignedWorker string
	FinishedAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for archived orders.
func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

func fromRecord(record ports.ArchivedOrder) ArchivedOrderDTO {
	return ArchivedOrderDTO{
		OrderID:        record.OrderID,
		CustomerID:     record.CustomerID,
		CustomerName:   record.CustomerName,
		Address:        record.Address,
		Total:          record.Total,
		PaymentMode:    record.PaymentMode,
		Status:         int(record.Status),
		AssignedWorker: record.AssignedWorker,
		FinishedAt:     record.FinishedAt,
	}
}

func toRecord(dto ArchivedOrderDTO) ports.ArchivedOrder {
	return ports.ArchivedOrder{
		OrderID:        dto.OrderID,
		CustomerID:     dto.CustomerID,
		CustomerName:   dto.CustomerName,
		Address:        dto.Address,
		Total:          dto.Total,
		PaymentMode:    dto.PaymentMode,
		Status:         order.Status(dto.Status),
		AssignedWorker: dto.AssignedWorker,
		FinishedAt:     dto.FinishedAt,
	}
}
