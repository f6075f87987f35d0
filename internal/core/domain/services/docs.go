// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the workshop system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderNumbers: A domain service issuing the sequential human-facing order numbers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
