package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// FinancialStatus represents the payment state of a service order.
// It is an independent state machine that shares the transition-validation
// contract with Status: a transition is legal only when listed in the
// successor table, and Paid and Cancelled are terminal.
//
// Owing has no inbound transitions in the table; it exists for orders
// carried over from legacy records and can still transition out normally.
type FinancialStatus int

const (
	// FinancialUnknown represents an invalid or undefined financial status.
	FinancialUnknown FinancialStatus = iota

	// FinancialOpen is the initial payment state of a new order.
	FinancialOpen

	// FinancialOwing marks a recognized outstanding debt.
	FinancialOwing

	// FinancialPartiallyPaid indicates some but not all of the amount was received.
	FinancialPartiallyPaid

	// FinancialInvoiced indicates an invoice was issued for the order.
	FinancialInvoiced

	// FinancialOverdue indicates payment is past its due date.
	FinancialOverdue

	// FinancialPaid indicates the order was settled in full. Terminal.
	FinancialPaid

	// FinancialCancelled indicates the charge was voided. Terminal.
	FinancialCancelled
)

func getFinancialStatusStrings() map[FinancialStatus]string {
	return map[FinancialStatus]string{
		FinancialUnknown:       "Unknown",
		FinancialOpen:          "Open",
		FinancialOwing:         "Owing",
		FinancialPartiallyPaid: "PartiallyPaid",
		FinancialInvoiced:      "Invoiced",
		FinancialOverdue:       "Overdue",
		FinancialPaid:          "Paid",
		FinancialCancelled:     "Cancelled",
	}
}

func getFinancialStatusSuccessors() map[FinancialStatus][]FinancialStatus {
	return map[FinancialStatus][]FinancialStatus{
		FinancialOpen:          {FinancialPaid, FinancialPartiallyPaid, FinancialOverdue, FinancialCancelled},
		FinancialOwing:         {FinancialPaid, FinancialPartiallyPaid, FinancialInvoiced, FinancialOverdue, FinancialCancelled},
		FinancialPartiallyPaid: {FinancialPaid, FinancialOverdue, FinancialCancelled},
		FinancialInvoiced:      {FinancialPaid, FinancialPartiallyPaid, FinancialOverdue, FinancialCancelled},
		FinancialOverdue:       {FinancialPaid, FinancialPartiallyPaid, FinancialCancelled},
		FinancialPaid:          {},
		FinancialCancelled:     {},
	}
}

// FinancialStatusFromString parses a financial status name as produced by String().
func FinancialStatusFromString(s string) (FinancialStatus, error) {
	for status, str := range getFinancialStatusStrings() {
		if str == s && status != FinancialUnknown {
			return status, nil
		}
	}
	return FinancialUnknown, errs.NewValueIsInvalidErrorWithCause(
		"financial",
		fmt.Errorf("%q is not a valid financial status", s),
	)
}

// Validate checks if the FinancialStatus value is valid.
func (s FinancialStatus) Validate() error {
	if _, ok := getFinancialStatusSuccessors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("financial", fmt.Errorf("%d is not a valid financial status", s))
	}
	return nil
}

// String returns the human-readable name of the financial status.
func (s FinancialStatus) String() string {
	if str, ok := getFinancialStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the payment workflow allows moving from
// the current state to target.
func (s FinancialStatus) CanTransitionTo(target FinancialStatus) bool {
	for _, successor := range getFinancialStatusSuccessors()[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to target.
// The returned error names both states when the transition is rejected.
func (s FinancialStatus) TransitionTo(target FinancialStatus) (FinancialStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStatusTransitionError("financial", s.String(), target.String())
	}
	return target, nil
}
