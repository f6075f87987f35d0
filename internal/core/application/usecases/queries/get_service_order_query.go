package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrGetServiceOrderQueryIsNotConstructed = errors.New(
	"GetServiceOrderQuery must be created via NewGetServiceOrderQuery constructor",
)

// GetServiceOrderQuery retrieves a single service order by its identifier.
// Soft-deleted orders are treated as absent.
//
// Example:
//
//	query, err := NewGetServiceOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
type GetServiceOrderQuery struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
}

// NewGetServiceOrderQuery creates a query for a single service order.
// Returns an error when the identifier is not a constructed UUID.
func NewGetServiceOrderQuery(orderID kernel.UUID) (GetServiceOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetServiceOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetServiceOrderQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetServiceOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetServiceOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrderQueryIsNotConstructed)
}
