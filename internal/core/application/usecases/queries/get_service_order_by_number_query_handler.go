package queries

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetServiceOrderByNumberQueryHandler loads a service order by its
// sequential number.
type GetServiceOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceOrderByNumberQueryHandler creates a handler for order number lookups.
func NewGetServiceOrderByNumberQueryHandler(db *gorm.DB) GetServiceOrderByNumberQueryHandler {
	return GetServiceOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup and returns the full order read model.
// Returns ObjectNotFoundError when no active order carries the number.
func (h GetServiceOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetServiceOrderByNumberQuery,
) (ServiceOrderDetails, error) {
	if err := query.Validate(); err != nil {
		return ServiceOrderDetails{}, err
	}

	details, err := loadOrderDetails(ctx, h.db, "o.order_number = ?", query.OrderNumber())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ServiceOrderDetails{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
		}
		return ServiceOrderDetails{}, err
	}

	return details, nil
}
