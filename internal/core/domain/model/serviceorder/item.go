package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ServiceItem is one billable service entry within an order.
// It is an immutable value object; the line total is derived, never stored
// by the caller.
//
// Monetary fields use exact decimal arithmetic. A line total may be
// negative (refunds and adjustments are expressed as regular items with a
// discount exceeding the value); it is not clamped.
type ServiceItem struct {
	description string
	quantity    int
	unitValue   decimal.Decimal
	discount    decimal.Decimal
	addition    decimal.Decimal
}

// NewServiceItem creates a validated service item.
//
// Rules:
//   - description must not be empty
//   - quantity must be at least 1 (callers default omitted quantities to 1)
//   - unitValue, discount and addition must not be negative
func NewServiceItem(description string, quantity int, unitValue, discount, addition decimal.Decimal) (ServiceItem, error) {
	if description == "" {
		return ServiceItem{}, errs.NewValueIsRequiredError("description")
	}
	if quantity < 1 {
		return ServiceItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitValue.IsNegative() {
		return ServiceItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unitValue",
			fmt.Errorf("%s is negative", unitValue),
		)
	}
	if discount.IsNegative() {
		return ServiceItem{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s is negative", discount),
		)
	}
	if addition.IsNegative() {
		return ServiceItem{}, errs.NewValueIsInvalidErrorWithCause(
			"addition",
			fmt.Errorf("%s is negative", addition),
		)
	}

	return ServiceItem{
		description: description,
		quantity:    quantity,
		unitValue:   unitValue,
		discount:    discount,
		addition:    addition,
	}, nil
}

// Description returns what service the item bills for.
func (i ServiceItem) Description() string {
	return i.description
}

// Quantity returns how many units of the service were performed.
func (i ServiceItem) Quantity() int {
	return i.quantity
}

// UnitValue returns the price of one unit.
func (i ServiceItem) UnitValue() decimal.Decimal {
	return i.unitValue
}

// Discount returns the per-line discount amount.
func (i ServiceItem) Discount() decimal.Decimal {
	return i.discount
}

// Addition returns the per-line surcharge amount.
func (i ServiceItem) Addition() decimal.Decimal {
	return i.addition
}

// Total derives the line total: quantity * unitValue + addition - discount.
// The result is recomputed on every call and may be negative.
func (i ServiceItem) Total() decimal.Decimal {
	return i.unitValue.
		Mul(decimal.NewFromInt(int64(i.quantity))).
		Add(i.addition).
		Sub(i.discount)
}
