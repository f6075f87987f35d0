package queries

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetServiceOrderByNumberQueryIsNotConstructed = errors.New(
	"GetServiceOrderByNumberQuery must be created via NewGetServiceOrderByNumberQuery constructor",
)

// GetServiceOrderByNumberQuery retrieves a single service order by its
// human-facing sequential number. This is the lookup counter clerks use
// when a customer walks in with a printed receipt.
type GetServiceOrderByNumberQuery struct {
	guard guard.ConstructorGuard

	orderNumber int64
}

// NewGetServiceOrderByNumberQuery creates a query keyed by order number.
// Numbers start at one; zero and negatives are rejected.
func NewGetServiceOrderByNumberQuery(orderNumber int64) (GetServiceOrderByNumberQuery, error) {
	if orderNumber < 1 {
		return GetServiceOrderByNumberQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not greater than 0", orderNumber),
		)
	}

	return GetServiceOrderByNumberQuery{
		guard:       guard.NewConstructorGuard(),
		orderNumber: orderNumber,
	}, nil
}

// OrderNumber returns the requested sequential number.
func (q GetServiceOrderByNumberQuery) OrderNumber() int64 {
	return q.orderNumber
}

// Validate ensures the query was created through the constructor.
func (q GetServiceOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrderByNumberQueryIsNotConstructed)
}
