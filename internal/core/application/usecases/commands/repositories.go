// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ServiceOrderRepoFactory provides access to the service-order repository
	// within a transaction.
	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// PersonRepoFactory provides access to the person repository within a transaction.
	PersonRepoFactory interface {
		PersonRepository() ports.PersonRepository
	}

	// ServiceOrderUoW manages transactions for order-only operations.
	// Used when commands only modify service-order aggregates.
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
	}

	// ServiceOrderUoWFactory creates new order unit of work instances.
	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}

	// UoW manages transactions that read persons while writing orders.
	// Used by commands that must verify the customer inside the same
	// transaction as the order write.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.ServiceOrderRepository()
	//   personRepo := uow.PersonRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ServiceOrderRepoFactory
		PersonRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// OrderNumberSequence issues and administers the human-facing order
	// numbers. Deliberately outside the unit of work: an increment
	// commits on its own, so a failed order creation burns a number
	// instead of serializing concurrent intakes on a counter lock.
	OrderNumberSequence interface {
		Next(ctx context.Context) (int64, error)
		Current(ctx context.Context) (int64, error)
		Set(ctx context.Context, value int64) error
		Exists(ctx context.Context) (bool, error)
	}
)
