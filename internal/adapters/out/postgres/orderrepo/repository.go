package orderrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceOrderRepository implements ServiceOrderRepository using GORM.
type GormServiceOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceOrderRepository creates a new GORM service order repository.
func NewGormServiceOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service order to the database, items included.
func (r *GormServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing service order to the database. The items are
// value objects without identity, so the old rows are replaced wholesale.
func (r *GormServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&ServiceOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Items", "id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&ServiceItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active service order by ID. Soft-deleted orders are
// treated as absent.
func (r *GormServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ? AND is_active = ?", id.Bytes(), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNumber retrieves an active service order by its sequential number.
func (r *GormServiceOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber int64) (*serviceorder.ServiceOrder, error) {
	var dto ServiceOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "order_number = ? AND is_active = ?", orderNumber, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}
