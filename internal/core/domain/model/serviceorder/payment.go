package serviceorder

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// PaymentType describes how the customer settles the order.
type PaymentType int

const (
	// PaymentTypeUnknown represents an invalid or undefined payment type.
	PaymentTypeUnknown PaymentType = iota

	// PaymentTypeCash is a single immediate payment. Default for new orders.
	PaymentTypeCash

	// PaymentTypeInstallment splits the amount over a number of installments.
	PaymentTypeInstallment

	// PaymentTypeStoreCredit settles the order against store credit.
	PaymentTypeStoreCredit
)

func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentTypeUnknown:     "Unknown",
		PaymentTypeCash:        "Cash",
		PaymentTypeInstallment: "Installment",
		PaymentTypeStoreCredit: "StoreCredit",
	}
}

// PaymentTypeFromString parses a payment type name as produced by String().
func PaymentTypeFromString(s string) (PaymentType, error) {
	for paymentType, str := range getPaymentTypeStrings() {
		if str == s && paymentType != PaymentTypeUnknown {
			return paymentType, nil
		}
	}
	return PaymentTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentType",
		fmt.Errorf("%q is not a valid payment type", s),
	)
}

// Validate checks if the PaymentType value is valid.
func (p PaymentType) Validate() error {
	if _, ok := getPaymentTypeStrings()[p]; !ok || p == PaymentTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentType", fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// String returns the human-readable name of the payment type.
func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PaymentTerms is a value object holding how an order is paid:
// the payment type and the installment counters.
//
// Invariants:
//   - installmentCount >= 1
//   - 0 <= paidInstallments <= installmentCount
type PaymentTerms struct {
	paymentType      PaymentType
	installmentCount int
	paidInstallments int
}

// DefaultPaymentTerms returns the terms applied to a new order when the
// client supplies none: cash, a single installment, nothing paid yet.
func DefaultPaymentTerms() PaymentTerms {
	return PaymentTerms{
		paymentType:      PaymentTypeCash,
		installmentCount: 1,
		paidInstallments: 0,
	}
}

// NewPaymentTerms creates validated payment terms.
//
// Returns an error when the payment type is invalid, installmentCount is
// below 1, or paidInstallments falls outside [0, installmentCount].
func NewPaymentTerms(paymentType PaymentType, installmentCount, paidInstallments int) (PaymentTerms, error) {
	if err := paymentType.Validate(); err != nil {
		return PaymentTerms{}, err
	}
	if installmentCount < 1 {
		return PaymentTerms{}, errs.NewValueIsInvalidErrorWithCause(
			"installmentCount",
			fmt.Errorf("%d is not greater than 0", installmentCount),
		)
	}
	if paidInstallments < 0 || paidInstallments > installmentCount {
		return PaymentTerms{}, errs.NewValueIsOutOfRangeError(
			"paidInstallments", paidInstallments, 0, installmentCount,
		)
	}

	return PaymentTerms{
		paymentType:      paymentType,
		installmentCount: installmentCount,
		paidInstallments: paidInstallments,
	}, nil
}

// PaymentType returns how the order is settled.
func (t PaymentTerms) PaymentType() PaymentType {
	return t.paymentType
}

// InstallmentCount returns the total number of installments.
func (t PaymentTerms) InstallmentCount() int {
	return t.installmentCount
}

// PaidInstallments returns how many installments were already paid.
func (t PaymentTerms) PaidInstallments() int {
	return t.paidInstallments
}

// Validate checks the terms invariants. A zero-value PaymentTerms is invalid.
func (t PaymentTerms) Validate() error {
	if err := t.paymentType.Validate(); err != nil {
		return err
	}
	if t.installmentCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"installmentCount",
			fmt.Errorf("%d is not greater than 0", t.installmentCount),
		)
	}
	if t.paidInstallments < 0 || t.paidInstallments > t.installmentCount {
		return errs.NewValueIsOutOfRangeError("paidInstallments", t.paidInstallments, 0, t.installmentCount)
	}
	return nil
}
