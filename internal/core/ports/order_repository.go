package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository defines the persistence contract for service
// order aggregates. All read methods exclude soft-deleted orders; a
// soft-deleted order is only reachable through Update on an aggregate
// loaded before its deletion.
type ServiceOrderRepository interface {
	// Add persists a new service order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing service order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves an active service order by its unique identifier.
	// Returns an ObjectNotFoundError when no active order matches.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)

	// GetByOrderNumber retrieves an active service order by its
	// human-facing sequential number.
	// Returns an ObjectNotFoundError when no active order matches.
	GetByOrderNumber(ctx context.Context, orderNumber int64) (*serviceorder.ServiceOrder, error)
}
