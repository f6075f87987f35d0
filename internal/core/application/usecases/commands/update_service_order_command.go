package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateServiceOrderCommandIsNotConstructed = errors.New(
	"UpdateServiceOrderCommand must be created via NewUpdateServiceOrderCommand constructor",
)

// UpdateServiceOrderCommand represents a partial update of an existing
// service order. Every field except the order identifier is optional:
// nil means "leave unchanged". Derived totals are never part of the
// command; the aggregate recomputes them from whatever items and
// adjustments end up applied.
//
// Status fields set through this command are raw overrides: they check
// enum validity but bypass the workflow tables. Workflow-checked moves
// go through ChangeOrderStatusCommand and ChangeFinancialStatusCommand.
type UpdateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	equipment *serviceorder.Equipment
	notes     *string
	warranty  *bool
	isReturn  *bool

	items         *[]serviceorder.ServiceItem
	terms         *serviceorder.PaymentTerms
	totalDiscount *decimal.Decimal
	totalAddition *decimal.Decimal

	status    *serviceorder.Status
	financial *serviceorder.FinancialStatus

	expectedDeliveryDate *time.Time
	deliveryDate         *time.Time
	totalAmountPaid      *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateServiceOrderCommand creates a command to patch an order.
// Only the order identifier is validated here; each patch is validated
// when applied to the aggregate.
func NewUpdateServiceOrderCommand(orderID kernel.UUID) (UpdateServiceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateServiceOrderCommand{}, err
	}

	return UpdateServiceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c UpdateServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Equipment returns the equipment patch, nil when unchanged.
func (c UpdateServiceOrderCommand) Equipment() *serviceorder.Equipment {
	return c.equipment
}

// Notes returns the notes patch, nil when unchanged.
func (c UpdateServiceOrderCommand) Notes() *string {
	return c.notes
}

// Warranty returns the warranty-flag patch, nil when unchanged.
func (c UpdateServiceOrderCommand) Warranty() *bool {
	return c.warranty
}

// IsReturn returns the return-flag patch, nil when unchanged.
func (c UpdateServiceOrderCommand) IsReturn() *bool {
	return c.isReturn
}

// Items returns the items patch, nil when unchanged. A pointer to an
// empty slice clears the items.
func (c UpdateServiceOrderCommand) Items() *[]serviceorder.ServiceItem {
	return c.items
}

// PaymentTerms returns the terms patch, nil when unchanged.
func (c UpdateServiceOrderCommand) PaymentTerms() *serviceorder.PaymentTerms {
	return c.terms
}

// TotalDiscount returns the order-level discount patch, nil when unchanged.
func (c UpdateServiceOrderCommand) TotalDiscount() *decimal.Decimal {
	return c.totalDiscount
}

// TotalAddition returns the order-level surcharge patch, nil when unchanged.
func (c UpdateServiceOrderCommand) TotalAddition() *decimal.Decimal {
	return c.totalAddition
}

// Status returns the raw operational status patch, nil when unchanged.
func (c UpdateServiceOrderCommand) Status() *serviceorder.Status {
	return c.status
}

// Financial returns the raw financial status patch, nil when unchanged.
func (c UpdateServiceOrderCommand) Financial() *serviceorder.FinancialStatus {
	return c.financial
}

// ExpectedDeliveryDate returns the promised-date patch, nil when unchanged.
func (c UpdateServiceOrderCommand) ExpectedDeliveryDate() *time.Time {
	return c.expectedDeliveryDate
}

// DeliveryDate returns the hand-back-date patch, nil when unchanged.
func (c UpdateServiceOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// TotalAmountPaid returns the received-amount patch, nil when unchanged.
func (c UpdateServiceOrderCommand) TotalAmountPaid() *decimal.Decimal {
	return c.totalAmountPaid
}

// SetEquipment patches the equipment description.
func (c *UpdateServiceOrderCommand) SetEquipment(equipment serviceorder.Equipment) error {
	if err := equipment.Validate(); err != nil {
		return err
	}
	c.equipment = &equipment
	return nil
}

// SetNotes patches the free-text notes.
func (c *UpdateServiceOrderCommand) SetNotes(notes string) {
	c.notes = &notes
}

// SetWarranty patches the warranty flag.
func (c *UpdateServiceOrderCommand) SetWarranty(warranty bool) {
	c.warranty = &warranty
}

// SetIsReturn patches the return flag.
func (c *UpdateServiceOrderCommand) SetIsReturn(isReturn bool) {
	c.isReturn = &isReturn
}

// SetItems patches the billed items. An empty slice clears them.
func (c *UpdateServiceOrderCommand) SetItems(items []serviceorder.ServiceItem) {
	c.items = &items
}

// SetPaymentTerms patches the payment terms.
func (c *UpdateServiceOrderCommand) SetPaymentTerms(terms serviceorder.PaymentTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	c.terms = &terms
	return nil
}

// SetTotalDiscount patches the order-level discount.
func (c *UpdateServiceOrderCommand) SetTotalDiscount(totalDiscount decimal.Decimal) {
	c.totalDiscount = &totalDiscount
}

// SetTotalAddition patches the order-level surcharge.
func (c *UpdateServiceOrderCommand) SetTotalAddition(totalAddition decimal.Decimal) {
	c.totalAddition = &totalAddition
}

// SetStatus patches the operational status as a raw override.
func (c *UpdateServiceOrderCommand) SetStatus(status serviceorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = &status
	return nil
}

// SetFinancial patches the financial status as a raw override.
func (c *UpdateServiceOrderCommand) SetFinancial(financial serviceorder.FinancialStatus) error {
	if err := financial.Validate(); err != nil {
		return err
	}
	c.financial = &financial
	return nil
}

// SetExpectedDeliveryDate patches the promised hand-back date.
func (c *UpdateServiceOrderCommand) SetExpectedDeliveryDate(expected time.Time) {
	c.expectedDeliveryDate = &expected
}

// SetDeliveryDate patches the actual hand-back date.
func (c *UpdateServiceOrderCommand) SetDeliveryDate(delivered time.Time) {
	c.deliveryDate = &delivered
}

// SetTotalAmountPaid patches the amount received so far.
func (c *UpdateServiceOrderCommand) SetTotalAmountPaid(amount decimal.Decimal) {
	c.totalAmountPaid = &amount
}
