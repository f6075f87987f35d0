package queries

import (
	"context"
	"database/sql"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListServiceOrdersQueryHandler retrieves filtered pages of service orders.
// The listing reads the denormalized totals straight off the order rows, so
// no join against the items table is needed.
type ListServiceOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListServiceOrdersQueryHandler creates a handler for order listings.
func NewListServiceOrdersQueryHandler(db *gorm.DB) ListServiceOrdersQueryHandler {
	return ListServiceOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered newest first and the
// total counts every row matching the filters, not just the current page.
func (h ListServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListServiceOrdersQuery,
) (PagedServiceOrders, error) {
	if err := query.Validate(); err != nil {
		return PagedServiceOrders{}, err
	}

	conditions := []string{"o.is_active = true"}
	args := make([]any, 0)

	if status := query.StatusFilter(); status != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(*status))
	}
	if financial := query.FinancialFilter(); financial != nil {
		conditions = append(conditions, "o.financial_status = ?")
		args = append(args, int(*financial))
	}
	if paymentType := query.PaymentTypeFilter(); paymentType != nil {
		conditions = append(conditions, "o.payment_type = ?")
		args = append(args, int(*paymentType))
	}
	if customerID := query.CustomerFilter(); customerID != nil {
		conditions = append(conditions, "o.customer_id = ?")
		args = append(args, customerID.Bytes())
	}
	if name := query.CustomerNameFilter(); name != "" {
		pattern := "%" + name + "%"
		conditions = append(conditions, "(p.name ILIKE ? OR p.trade_name ILIKE ? OR p.corporate_name ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if equipment := query.EquipmentFilter(); equipment != "" {
		pattern := "%" + equipment + "%"
		conditions = append(conditions, "(o.equipment_name ILIKE ? OR o.equipment_model ILIKE ? OR o.equipment_brand ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if serialNumber := query.SerialNumberFilter(); serialNumber != "" {
		conditions = append(conditions, "o.equipment_serial_number ILIKE ?")
		args = append(args, serialNumber)
	}
	if warranty := query.WarrantyFilter(); warranty != nil {
		conditions = append(conditions, "o.warranty = ?")
		args = append(args, *warranty)
	}
	if from := query.EntryDateFrom(); from != nil {
		conditions = append(conditions, "o.entry_date >= ?")
		args = append(args, *from)
	}
	if to := query.EntryDateTo(); to != nil {
		conditions = append(conditions, "o.entry_date <= ?")
		args = append(args, *to)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT count(*) FROM service_orders o LEFT JOIN persons p ON p.id = o.customer_id WHERE `+where, args...).
		Scan(&total).Error
	if err != nil {
		return PagedServiceOrders{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(args, query.Limit(), offset)

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
		WHERE `+where+`
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

// scanOrderSummaries runs a summary-shaped SQL statement and maps its rows.
// The statement must select exactly the ServiceOrderSummary columns in order.
func scanOrderSummaries(ctx context.Context, db *gorm.DB, sqlText string, args []any) ([]ServiceOrderSummary, error) {
	rows, err := db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ServiceOrderSummary, 0)
	for rows.Next() {
		var summary ServiceOrderSummary
		var id, customerID uuid.UUID
		var status, financial int
		var expectedDeliveryDate sql.NullTime

		err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&customerID,
			&summary.CustomerName,
			&summary.EquipmentName,
			&summary.EquipmentBrand,
			&summary.Warranty,
			&status,
			&financial,
			&summary.EntryDate,
			&expectedDeliveryDate,
			&summary.TotalAmountLeft,
			&summary.TotalAmountPaid,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.CustomerID = custID

		summary.Status = serviceorder.Status(status).String()
		summary.FinancialStatus = serviceorder.FinancialStatus(financial).String()
		summary.ExpectedDeliveryDate = nullTimePtr(expectedDeliveryDate)

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
