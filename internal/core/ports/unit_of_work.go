package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The order-number sequence is deliberately NOT part of the unit of
// work: sequence increments commit independently so a rolled-back
// order creation burns its number instead of blocking concurrent
// intakes on a counter row lock.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ServiceOrderRepository returns a ServiceOrderRepository instance bound
	// to the current transaction. Repository will use the transaction
	// started by Begin().
	ServiceOrderRepository() ServiceOrderRepository

	// PersonRepository returns a PersonRepository instance bound to the
	// current transaction.
	PersonRepository() PersonRepository
}
