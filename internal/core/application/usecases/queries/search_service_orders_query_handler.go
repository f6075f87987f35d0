package queries

import (
	"context"

	"gorm.io/gorm"
)

// searchMatchSQL is the predicate shared by the count and the page query.
// The order number is matched as text so a partial number still hits.
const searchMatchSQL = `(
	CAST(o.order_number AS TEXT) LIKE ?
	OR o.equipment_name ILIKE ?
	OR o.equipment_model ILIKE ?
	OR o.equipment_brand ILIKE ?
	OR o.equipment_serial_number ILIKE ?
	OR o.notes ILIKE ?
	OR p.name ILIKE ?
	OR p.trade_name ILIKE ?
	OR p.corporate_name ILIKE ?
)`

// SearchServiceOrdersQueryHandler performs free-text searches over orders.
type SearchServiceOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchServiceOrdersQueryHandler creates a handler for order searches.
func NewSearchServiceOrdersQueryHandler(db *gorm.DB) SearchServiceOrdersQueryHandler {
	return SearchServiceOrdersQueryHandler{db: db}
}

// Handle executes the search and returns a page of matching summaries,
// newest first.
func (h SearchServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchServiceOrdersQuery,
) (PagedServiceOrders, error) {
	if err := query.Validate(); err != nil {
		return PagedServiceOrders{}, err
	}

	pattern := "%" + query.Text() + "%"
	matchArgs := []any{
		pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern,
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM service_orders o
		LEFT JOIN persons p ON p.id = o.customer_id
		WHERE o.is_active = true AND `+searchMatchSQL,
		matchArgs...,
	).Scan(&total).Error
	if err != nil {
		return PagedServiceOrders{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(matchArgs, query.Limit(), offset)

	summaries, err := scanOrderSummaries(ctx, h.db, `
		SELECT
			o.id,
			o.order_number,
			o.customer_id,
			`+displayNameSQL+` AS customer_name,
			o.equipment_name,
			o.equipment_brand,
			o.warranty,
			o.status,
			o.financial_status,
			o.entry_date,
			o.expected_delivery_date,
			o.total_amount_left,
			o.total_amount_paid
		FROM service_orders o
		LEFT JOIN persons p ON p.id = o.customer_id
		WHERE o.is_active = true AND `+searchMatchSQL+`
		ORDER BY o.entry_date DESC, o.order_number DESC
		LIMIT ? OFFSET ?
	`, pageArgs)
	if err != nil {
		return PagedServiceOrders{}, err
	}

	return PagedServiceOrders{
		Data:  summaries,
		Total: total,
		Page:  query.Page(),
		Limit: query.Limit(),
	}, nil
}
