package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// deliveryDateTolerance is how far into the future a recorded delivery
// date may lie, to absorb clock skew between the front desk and the server.
const deliveryDateTolerance = time.Hour

var (
	// ErrServiceOrderIsNotConstructed is returned when a ServiceOrder instance was not
	// created through the NewServiceOrder or RestoreServiceOrder factory methods.
	ErrServiceOrderIsNotConstructed = errors.New(
		"ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder",
	)
)

// ServiceOrder is the aggregate root for a piece of equipment brought in
// for service. It owns the order's human-facing number, the equipment
// description, the two status workflows, the billed items and the derived
// monetary totals.
//
// Invariants:
//   - orderNumber is positive and assigned exactly once at creation
//   - status and financial only change through their transition methods,
//     except for the documented raw override used by generic updates
//   - servicesSum and totalAmountLeft are recomputed whenever items or
//     order-level adjustments change, never accepted from callers
//   - a soft-deleted order keeps its record but is excluded from reads
type ServiceOrder struct {
	id          kernel.UUID
	orderNumber int64
	customerID  kernel.UUID
	equipment   Equipment
	notes       string
	warranty    bool
	isReturn    bool

	status    Status
	financial FinancialStatus

	entryDate            time.Time
	approvalDate         *time.Time
	expectedDeliveryDate *time.Time
	deliveryDate         *time.Time

	terms           PaymentTerms
	items           []ServiceItem
	totalDiscount   decimal.Decimal
	totalAddition   decimal.Decimal
	totals          Totals
	totalAmountPaid decimal.Decimal

	isActive  bool
	deletedAt *time.Time

	isConstructed bool
}

// NewServiceOrder creates a new order with the defaults of a freshly
// opened intake: operational status ToConfirm, financial status Open,
// cash payment in a single installment, active, no items.
//
// The order number must come from the order-number sequence and is fixed
// for the lifetime of the aggregate. The entry date is stamped by the
// caller so the clock stays injectable.
func NewServiceOrder(
	id kernel.UUID,
	orderNumber int64,
	customerID kernel.UUID,
	equipment Equipment,
	entryDate time.Time,
) (*ServiceOrder, error) {
	order := &ServiceOrder{
		status:          StatusToConfirm,
		financial:       FinancialOpen,
		terms:           DefaultPaymentTerms(),
		totalDiscount:   decimal.Zero,
		totalAddition:   decimal.Zero,
		totalAmountPaid: decimal.Zero,
		isActive:        true,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.SetEquipment(equipment),
		order.setEntryDate(entryDate),
	); err != nil {
		return nil, err
	}

	order.recalculateTotals()
	return order, nil
}

// RestoreServiceOrderParams carries a persisted order state back into the
// domain model. Used by repositories when rehydrating from storage.
type RestoreServiceOrderParams struct {
	ID                   kernel.UUID
	OrderNumber          int64
	CustomerID           kernel.UUID
	Equipment            Equipment
	Notes                string
	Warranty             bool
	IsReturn             bool
	Status               Status
	Financial            FinancialStatus
	EntryDate            time.Time
	ApprovalDate         *time.Time
	ExpectedDeliveryDate *time.Time
	DeliveryDate         *time.Time
	Terms                PaymentTerms
	Items                []ServiceItem
	TotalDiscount        decimal.Decimal
	TotalAddition        decimal.Decimal
	TotalAmountPaid      decimal.Decimal
	IsActive             bool
	DeletedAt            *time.Time
}

// RestoreServiceOrder reconstructs an order from persistence. Enum values,
// identity and payment terms are re-validated; date rules are not, since
// stored dates were valid when set and must remain loadable afterwards.
// Derived totals are recomputed rather than trusted.
func RestoreServiceOrder(params RestoreServiceOrderParams) (*ServiceOrder, error) {
	order := &ServiceOrder{
		notes:                params.Notes,
		warranty:             params.Warranty,
		isReturn:             params.IsReturn,
		approvalDate:         params.ApprovalDate,
		expectedDeliveryDate: params.ExpectedDeliveryDate,
		deliveryDate:         params.DeliveryDate,
		items:                params.Items,
		totalAmountPaid:      params.TotalAmountPaid,
		isActive:             params.IsActive,
		deletedAt:            params.DeletedAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setOrderNumber(params.OrderNumber),
		order.setCustomerID(params.CustomerID),
		order.SetEquipment(params.Equipment),
		order.setEntryDate(params.EntryDate),
		order.OverrideStatus(params.Status),
		order.OverrideFinancialStatus(params.Financial),
		order.SetPaymentTerms(params.Terms),
		order.SetAdjustments(params.TotalDiscount, params.TotalAddition),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the instance was produced by a factory method.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrServiceOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's storage identifier.
func (o *ServiceOrder) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing sequential number.
func (o *ServiceOrder) OrderNumber() int64 {
	return o.orderNumber
}

// CustomerID returns the identifier of the person the order belongs to.
func (o *ServiceOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// Equipment returns the serviced equipment description.
func (o *ServiceOrder) Equipment() Equipment {
	return o.equipment
}

// Notes returns the free-text notes on the order.
func (o *ServiceOrder) Notes() string {
	return o.notes
}

// Warranty reports whether the order is a warranty job.
func (o *ServiceOrder) Warranty() bool {
	return o.warranty
}

// IsReturn reports whether the equipment came back after a previous service.
func (o *ServiceOrder) IsReturn() bool {
	return o.isReturn
}

// Status returns the current operational workflow state.
func (o *ServiceOrder) Status() Status {
	return o.status
}

// Financial returns the current payment workflow state.
func (o *ServiceOrder) Financial() FinancialStatus {
	return o.financial
}

// EntryDate returns when the equipment was received.
func (o *ServiceOrder) EntryDate() time.Time {
	return o.entryDate
}

// ApprovalDate returns when the customer approved the work, nil before then.
func (o *ServiceOrder) ApprovalDate() *time.Time {
	return o.approvalDate
}

// ExpectedDeliveryDate returns the promised hand-back date, nil when unset.
func (o *ServiceOrder) ExpectedDeliveryDate() *time.Time {
	return o.expectedDeliveryDate
}

// DeliveryDate returns when the equipment was handed back, nil before then.
func (o *ServiceOrder) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// PaymentTerms returns how the order is paid.
func (o *ServiceOrder) PaymentTerms() PaymentTerms {
	return o.terms
}

// Items returns the billed service items in order.
func (o *ServiceOrder) Items() []ServiceItem {
	return o.items
}

// TotalDiscount returns the order-level discount adjustment.
func (o *ServiceOrder) TotalDiscount() decimal.Decimal {
	return o.totalDiscount
}

// TotalAddition returns the order-level surcharge adjustment.
func (o *ServiceOrder) TotalAddition() decimal.Decimal {
	return o.totalAddition
}

// ServicesSum returns the derived sum of all line totals.
func (o *ServiceOrder) ServicesSum() decimal.Decimal {
	return o.totals.ServicesSum()
}

// TotalAmountLeft returns the derived amount still owed. May be negative,
// in which case it represents a customer credit.
func (o *ServiceOrder) TotalAmountLeft() decimal.Decimal {
	return o.totals.TotalAmountLeft()
}

// TotalAmountPaid returns the externally tracked amount received so far.
func (o *ServiceOrder) TotalAmountPaid() decimal.Decimal {
	return o.totalAmountPaid
}

// IsActive reports whether the order is visible to normal reads.
func (o *ServiceOrder) IsActive() bool {
	return o.isActive
}

// DeletedAt returns when the order was soft deleted, nil while active.
func (o *ServiceOrder) DeletedAt() *time.Time {
	return o.deletedAt
}

// SetEquipment replaces the equipment description.
func (o *ServiceOrder) SetEquipment(equipment Equipment) error {
	if err := equipment.Validate(); err != nil {
		return err
	}
	o.equipment = equipment
	return nil
}

// SetNotes replaces the free-text notes.
func (o *ServiceOrder) SetNotes(notes string) {
	o.notes = notes
}

// SetWarranty flags or unflags the order as a warranty job.
func (o *ServiceOrder) SetWarranty(warranty bool) {
	o.warranty = warranty
}

// SetIsReturn flags or unflags the order as a returning repair.
func (o *ServiceOrder) SetIsReturn(isReturn bool) {
	o.isReturn = isReturn
}

// SetItems replaces the billed items and recomputes the derived totals.
func (o *ServiceOrder) SetItems(items []ServiceItem) {
	o.items = items
	o.recalculateTotals()
}

// SetAdjustments replaces the order-level discount and addition and
// recomputes the derived totals. Both values must be non-negative.
func (o *ServiceOrder) SetAdjustments(totalDiscount, totalAddition decimal.Decimal) error {
	if err := ValidateAdjustments(totalDiscount, totalAddition); err != nil {
		return err
	}

	o.totalDiscount = totalDiscount
	o.totalAddition = totalAddition
	o.recalculateTotals()
	return nil
}

// SetPaymentTerms replaces the payment terms.
func (o *ServiceOrder) SetPaymentTerms(terms PaymentTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	o.terms = terms
	return nil
}

// SetTotalAmountPaid records the amount received so far. This field is
// tracked by payment recording, not derived from the items.
func (o *ServiceOrder) SetTotalAmountPaid(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmountPaid", fmt.Errorf("%s is negative", amount))
	}
	o.totalAmountPaid = amount
	return nil
}

// ScheduleDelivery sets the promised hand-back date. The date must not be
// in the past at the time it is set.
func (o *ServiceOrder) ScheduleDelivery(expected time.Time, now time.Time) error {
	if err := ValidateExpectedDelivery(expected, now); err != nil {
		return err
	}
	o.expectedDeliveryDate = &expected
	return nil
}

// ValidateAdjustments checks that order-level discount and addition are not
// negative. Exposed so intake can reject bad adjustments before an order
// number is drawn.
func ValidateAdjustments(totalDiscount, totalAddition decimal.Decimal) error {
	if totalDiscount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalDiscount", fmt.Errorf("%s is negative", totalDiscount))
	}
	if totalAddition.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalAddition", fmt.Errorf("%s is negative", totalAddition))
	}
	return nil
}

// ValidateExpectedDelivery checks that a promised hand-back date is not
// already past. Exposed so intake can reject bad dates before an order
// number is drawn.
func ValidateExpectedDelivery(expected time.Time, now time.Time) error {
	if expected.Before(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expectedDeliveryDate",
			fmt.Errorf("%s is in the past", expected.Format(time.RFC3339)),
		)
	}
	return nil
}

// RecordDelivery sets the actual hand-back date. The date must not lie
// more than the tolerance into the future at the time it is set.
func (o *ServiceOrder) RecordDelivery(delivered time.Time, now time.Time) error {
	if delivered.After(now.Add(deliveryDateTolerance)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryDate",
			fmt.Errorf("%s is in the future", delivered.Format(time.RFC3339)),
		)
	}
	o.deliveryDate = &delivered
	return nil
}

// ChangeStatus moves the operational workflow to target after asserting
// the transition against the current state. Reaching Approved stamps the
// approval date; reaching Delivered stamps the delivery date unless one
// was already recorded.
func (o *ServiceOrder) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	switch newStatus {
	case StatusApproved:
		o.approvalDate = &now
	case StatusDelivered:
		if o.deliveryDate == nil {
			o.deliveryDate = &now
		}
	}
	return nil
}

// ChangeFinancialStatus moves the payment workflow to target after
// asserting the transition against the current state.
func (o *ServiceOrder) ChangeFinancialStatus(target FinancialStatus) error {
	newStatus, err := o.financial.TransitionTo(target)
	if err != nil {
		return err
	}
	o.financial = newStatus
	return nil
}

// OverrideStatus sets the operational status as a raw field write,
// checking only that the value is a valid state. Used by generic updates
// and rehydration; workflow changes go through ChangeStatus.
func (o *ServiceOrder) OverrideStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// OverrideFinancialStatus sets the financial status as a raw field write,
// checking only that the value is a valid state.
func (o *ServiceOrder) OverrideFinancialStatus(financial FinancialStatus) error {
	if err := financial.Validate(); err != nil {
		return err
	}
	o.financial = financial
	return nil
}

// MarkDeleted soft deletes the order: the record remains for audit but is
// excluded from all default reads.
func (o *ServiceOrder) MarkDeleted(now time.Time) {
	o.isActive = false
	o.deletedAt = &now
}

// recalculateTotals re-derives servicesSum and totalAmountLeft. Called on
// every mutation of items or adjustments so stored totals can never drift
// from their inputs.
func (o *ServiceOrder) recalculateTotals() {
	o.totals = CalculateTotals(o.items, o.totalDiscount, o.totalAddition)
}

func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ServiceOrder) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not greater than 0", orderNumber),
		)
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *ServiceOrder) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *ServiceOrder) setEntryDate(entryDate time.Time) error {
	if entryDate.IsZero() {
		return errs.NewValueIsRequiredError("entryDate")
	}
	o.entryDate = entryDate
	return nil
}
