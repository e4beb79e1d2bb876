package orderarchive

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderArchive implements ports.OrderArchive using GORM.
type GormOrderArchive struct {
	db *gorm.DB
}

// NewGormOrderArchive creates a new GORM order archive.
func NewGormOrderArchive(db *gorm.DB) *GormOrderArchive {
	return &GormOrderArchive{db: db}
}

// Save stores the archived record. The order id is the primary key, so
// archiving the same order twice fails with a duplicate-key error.
func (r *GormOrderArchive) Save(ctx context.Context, archived ports.ArchivedOrder) error {
	dto := fromRecord(archived)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves one archived record by order id.
func (r *GormOrderArchive) Get(ctx context.Context, orderID int64) (ports.ArchivedOrder, error) {
	var dto ArchivedOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ArchivedOrder{}, errs.NewObjectNotFoundError("archived order", orderID)
		}
		return ports.ArchivedOrder{}, err
	}

	return toRecord(dto), nil
}

// DeleteOlderThan removes records that finished before the cutoff.
func (r *GormOrderArchive) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("finished_at < ?", cutoff).
		Delete(&ArchivedOrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
