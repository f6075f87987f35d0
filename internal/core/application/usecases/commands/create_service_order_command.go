package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
	"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
)

// CreateServiceOrderCommand represents a request to open a new service
// order for a customer's equipment. Only the identities and the
// equipment are required; items, payment terms, adjustments and the
// promised delivery date are optional and fall back to intake defaults.
//
// The order number is never part of the command: it is issued by the
// sequence when the handler runs.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	equipment, _ := serviceorder.NewEquipment("notebook", "XPS 13", "Dell", "SN-1", "bivolt", "charger")
//	cmd, err := NewCreateServiceOrderCommand(orderID, customerID, equipment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	cmd.SetNotes("does not power on")
//
//	handler := NewCreateServiceOrderCommandHandler(uowFactory, sequence)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create service order: %w", err)
//	}
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	equipment  serviceorder.Equipment

	notes    string
	warranty bool
	isReturn bool

	items                []serviceorder.ServiceItem
	terms                *serviceorder.PaymentTerms
	totalDiscount        decimal.Decimal
	totalAddition        decimal.Decimal
	expectedDeliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand creates a command to open a new service order.
// Validates that both identifiers and the equipment are valid.
// Returns an error if any validation fails.
func NewCreateServiceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	equipment serviceorder.Equipment,
) (CreateServiceOrderCommand, error) {
	orderCommand := CreateServiceOrderCommand{
		totalDiscount: decimal.Zero,
		totalAddition: decimal.Zero,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setEquipment(equipment),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateServiceOrderCommandIsNotConstructed if validation fails.
func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer bringing the equipment.
func (c CreateServiceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Equipment returns the description of the equipment taken in.
func (c CreateServiceOrderCommand) Equipment() serviceorder.Equipment {
	return c.equipment
}

// Notes returns the free-text intake notes.
func (c CreateServiceOrderCommand) Notes() string {
	return c.notes
}

// Warranty reports whether the order was flagged as a warranty job.
func (c CreateServiceOrderCommand) Warranty() bool {
	return c.warranty
}

// IsReturn reports whether the equipment came back after a previous service.
func (c CreateServiceOrderCommand) IsReturn() bool {
	return c.isReturn
}

// Items returns the billed items supplied at intake, nil when none.
func (c CreateServiceOrderCommand) Items() []serviceorder.ServiceItem {
	return c.items
}

// PaymentTerms returns the requested payment terms, nil for the default.
func (c CreateServiceOrderCommand) PaymentTerms() *serviceorder.PaymentTerms {
	return c.terms
}

// TotalDiscount returns the order-level discount, zero when omitted.
func (c CreateServiceOrderCommand) TotalDiscount() decimal.Decimal {
	return c.totalDiscount
}

// TotalAddition returns the order-level surcharge, zero when omitted.
func (c CreateServiceOrderCommand) TotalAddition() decimal.Decimal {
	return c.totalAddition
}

// ExpectedDeliveryDate returns the promised hand-back date, nil when unset.
func (c CreateServiceOrderCommand) ExpectedDeliveryDate() *time.Time {
	return c.expectedDeliveryDate
}

// SetNotes attaches free-text intake notes.
func (c *CreateServiceOrderCommand) SetNotes(notes string) {
	c.notes = notes
}

// SetWarranty flags the order as a warranty job.
func (c *CreateServiceOrderCommand) SetWarranty(warranty bool) {
	c.warranty = warranty
}

// SetIsReturn flags the order as a returning repair.
func (c *CreateServiceOrderCommand) SetIsReturn(isReturn bool) {
	c.isReturn = isReturn
}

// SetItems attaches the billed items supplied at intake.
func (c *CreateServiceOrderCommand) SetItems(items []serviceorder.ServiceItem) {
	c.items = items
}

// SetPaymentTerms overrides the default cash terms.
func (c *CreateServiceOrderCommand) SetPaymentTerms(terms serviceorder.PaymentTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	c.terms = &terms
	return nil
}

// SetAdjustments attaches the order-level discount and surcharge.
// Range rules are enforced by the aggregate when the handler applies them.
func (c *CreateServiceOrderCommand) SetAdjustments(totalDiscount, totalAddition decimal.Decimal) {
	c.totalDiscount = totalDiscount
	c.totalAddition = totalAddition
}

// SetExpectedDeliveryDate attaches the promised hand-back date.
// The not-in-the-past rule is enforced by the aggregate when applied.
func (c *CreateServiceOrderCommand) SetExpectedDeliveryDate(expected time.Time) {
	c.expectedDeliveryDate = &expected
}

func (c *CreateServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateServiceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateServiceOrderCommand) setEquipment(equipment serviceorder.Equipment) error {
	if err := equipment.Validate(); err != nil {
		return err
	}

	c.equipment = equipment
	return nil
}
