package serviceorder

import "github.com/shopspring/decimal"

// Totals holds the derived monetary fields of an order. These are never
// accepted from client input; they are recomputed from the items and the
// order-level adjustments before every persistence of a change to either.
//
// Recomputation is deterministic and idempotent: running it again over
// unchanged inputs yields identical values, with no accumulation drift,
// because all arithmetic is exact decimal.
type Totals struct {
	servicesSum     decimal.Decimal
	totalAmountLeft decimal.Decimal
}

// ServicesSum returns the sum of all line totals, zero for no items.
func (t Totals) ServicesSum() decimal.Decimal {
	return t.servicesSum
}

// TotalAmountLeft returns servicesSum + totalAddition - totalDiscount.
// A negative value is preserved and surfaces as a customer credit.
func (t Totals) TotalAmountLeft() decimal.Decimal {
	return t.totalAmountLeft
}

// CalculateTotals derives the order-level totals from the line items and
// the order-level discount and addition. Pure function: no side effects,
// deterministic given its inputs.
func CalculateTotals(items []ServiceItem, totalDiscount, totalAddition decimal.Decimal) Totals {
	servicesSum := decimal.Zero
	for _, item := range items {
		servicesSum = servicesSum.Add(item.Total())
	}

	return Totals{
		servicesSum:     servicesSum,
		totalAmountLeft: servicesSum.Add(totalAddition).Sub(totalDiscount),
	}
}
