package queries

import (
	"errors"
	"time"

	"workshop/internal/pkg/guard"
)

var ErrGetOverdueCandidatesQueryIsNotConstructed = errors.New(
	"GetOverdueCandidatesQuery must be created via NewGetOverdueCandidatesQuery constructor",
)

// GetOverdueCandidatesQuery finds active orders whose expected delivery date
// has passed while payment is still outstanding. The overdue flagging job
// runs this periodically and moves each candidate to the Overdue status.
type GetOverdueCandidatesQuery struct {
	guard guard.ConstructorGuard

	asOf time.Time
}

// NewGetOverdueCandidatesQuery creates a query evaluated against the given
// point in time.
func NewGetOverdueCandidatesQuery(asOf time.Time) GetOverdueCandidatesQuery {
	return GetOverdueCandidatesQuery{
		guard: guard.NewConstructorGuard(),
		asOf:  asOf,
	}
}

// AsOf returns the point in time the deadline is evaluated against.
func (q GetOverdueCandidatesQuery) AsOf() time.Time {
	return q.asOf
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueCandidatesQueryIsNotConstructed)
}
