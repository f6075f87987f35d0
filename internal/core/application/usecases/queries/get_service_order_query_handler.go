package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetServiceOrderQueryHandler loads single service orders from the database.
//
// Example:
//
//	handler := NewGetServiceOrderQueryHandler(db)
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order #%d: %s\n", details.OrderNumber, details.Status)
type GetServiceOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetServiceOrderQueryHandler(db *gorm.DB) GetServiceOrderQueryHandler {
	return GetServiceOrderQueryHandler{db: db}
}

// Handle executes the query and returns the full order read model.
// Returns ObjectNotFoundError when the order does not exist or was deleted.
func (h GetServiceOrderQueryHandler) Handle(
	ctx context.Context,
	query GetServiceOrderQuery,
) (ServiceOrderDetails, error) {
	if err := query.Validate(); err != nil {
		return ServiceOrderDetails{}, err
	}

	details, err := loadOrderDetails(ctx, h.db, "o.id = ?", query.OrderID().Bytes())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ServiceOrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return ServiceOrderDetails{}, err
	}

	return details, nil
}

// displayNameSQL resolves the customer's display name in the same order the
// person read model does: personal name, then trade name, then corporate name.
const displayNameSQL = `COALESCE(NULLIF(p.name, ''), NULLIF(p.trade_name, ''), p.corporate_name, '')`

// loadOrderDetails reads one active order matching the condition, together
// with its items and the customer's display name. Returns sql.ErrNoRows when
// no active order matches.
func loadOrderDetails(ctx context.Context, db *gorm.DB, condition string, arg any) (ServiceOrderDetails, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.customer_id,
			`+displayNameSQL+` AS customer_name,
			o.equipment_name,
			o.equipment_model,
			o.equipment_brand,
			o.equipment_serial_number,
			o.equipment_voltage,
			o.equipment_accessories,
			o.notes,
			o.warranty,
			o.is_return,
			o.status,
			o.financial_status,
			o.entry_date,
			o.approval_date,
			o.expected_delivery_date,
			o.delivery_date,
			o.payment_type,
			o.installment_count,
			o.paid_installments,
			o.total_discount,
			o.total_addition,
			o.services_sum,
			o.total_amount_left,
			o.total_amount_paid
		FROM service_orders o
		LEFT JOIN persons p ON p.id = o.customer_id
		WHERE `+condition+` AND o.is_active = true
	`, arg).Row()

	var details ServiceOrderDetails
	var id, customerID uuid.UUID
	var status, financial, paymentType int
	var approvalDate, expectedDeliveryDate, deliveryDate sql.NullTime

	err := row.Scan(
		&id,
		&details.OrderNumber,
		&customerID,
		&details.CustomerName,
		&details.Equipment.Name,
		&details.Equipment.Model,
		&details.Equipment.Brand,
		&details.Equipment.SerialNumber,
		&details.Equipment.Voltage,
		&details.Equipment.Accessories,
		&details.Notes,
		&details.Warranty,
		&details.IsReturn,
		&status,
		&financial,
		&details.EntryDate,
		&approvalDate,
		&expectedDeliveryDate,
		&deliveryDate,
		&paymentType,
		&details.InstallmentCount,
		&details.PaidInstallments,
		&details.TotalDiscount,
		&details.TotalAddition,
		&details.ServicesSum,
		&details.TotalAmountLeft,
		&details.TotalAmountPaid,
	)
	if err != nil {
		return ServiceOrderDetails{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	details.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	details.CustomerID = custID

	details.Status = serviceorder.Status(status).String()
	details.FinancialStatus = serviceorder.FinancialStatus(financial).String()
	details.PaymentType = serviceorder.PaymentType(paymentType).String()
	details.ApprovalDate = nullTimePtr(approvalDate)
	details.ExpectedDeliveryDate = nullTimePtr(expectedDeliveryDate)
	details.DeliveryDate = nullTimePtr(deliveryDate)

	items, err := loadOrderItems(ctx, db, id)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	details.Items = items

	return details, nil
}

// loadOrderItems reads the billed items of an order in intake order.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]ServiceItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			description,
			quantity,
			unit_value,
			discount,
			addition
		FROM service_order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ServiceItemView, 0)
	for rows.Next() {
		var item ServiceItemView
		err = rows.Scan(
			&item.Description,
			&item.Quantity,
			&item.UnitValue,
			&item.Discount,
			&item.Addition,
		)
		if err != nil {
			return nil, err
		}

		item.Total = item.UnitValue.
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Add(item.Addition).
			Sub(item.Discount)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
