package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueCandidatesQueryHandler finds orders eligible for overdue flagging.
type GetOverdueCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueCandidatesQueryHandler creates a handler for overdue candidate lookups.
func NewGetOverdueCandidatesQueryHandler(db *gorm.DB) GetOverdueCandidatesQueryHandler {
	return GetOverdueCandidatesQueryHandler{db: db}
}

// Handle returns the identifiers of active orders past their expected
// delivery date whose financial status can still move to Overdue.
// Results are sorted by order number for deterministic processing.
func (h GetOverdueCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueCandidatesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM service_orders
		WHERE is_active = true
			AND expected_delivery_date IS NOT NULL
			AND expected_delivery_date < ?
			AND financial_status IN (?, ?, ?, ?)
		ORDER BY order_number
	`,
		query.AsOf(),
		int(serviceorder.FinancialOpen),
		int(serviceorder.FinancialOwing),
		int(serviceorder.FinancialPartiallyPaid),
		int(serviceorder.FinancialInvoiced),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
