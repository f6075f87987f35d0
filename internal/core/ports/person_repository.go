// Package ports defines repository interfaces for the service-order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/person"
)

// PersonRepository defines the read contract for customers. The
// service-order workflows never create or modify persons; they only
// verify existence and activity and enrich listings with names.
type PersonRepository interface {
	// Get retrieves a person by its unique identifier regardless of
	// activity. Returns an ObjectNotFoundError when no person matches.
	// Callers that attach a person to a new order must additionally
	// check IsActive.
	Get(ctx context.Context, id kernel.UUID) (*person.Person, error)
}
