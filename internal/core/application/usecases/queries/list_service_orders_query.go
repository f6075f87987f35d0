package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const (
	listMinLimit = 1
	listMaxLimit = 100
)

var ErrListServiceOrdersQueryIsNotConstructed = errors.New(
	"ListServiceOrdersQuery must be created via NewListServiceOrdersQuery constructor",
)

// ListServiceOrdersQuery retrieves a filtered, paginated page of service
// orders. All filters are optional; an unfiltered query lists every active
// order, newest first.
//
// Example:
//
//	query, err := NewListServiceOrdersQuery(1, 20)
//	if err != nil {
//	    return err
//	}
//	if err := query.SetStatusFilter(serviceorder.StatusApproved); err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListServiceOrdersQuery struct {
	guard guard.ConstructorGuard

	page  int
	limit int

	status        *serviceorder.Status
	financial     *serviceorder.FinancialStatus
	paymentType   *serviceorder.PaymentType
	customerID    *kernel.UUID
	customerName  string
	equipmentText string
	serialNumber  string
	warranty      *bool
	entryDateFrom *time.Time
	entryDateTo   *time.Time
}

// NewListServiceOrdersQuery creates a listing query for the given page.
// Pages are one-based; the limit must lie between 1 and 100.
func NewListServiceOrdersQuery(page, limit int) (ListServiceOrdersQuery, error) {
	if page < 1 {
		return ListServiceOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"page",
			fmt.Errorf("%d is not greater than 0", page),
		)
	}
	if limit < listMinLimit || limit > listMaxLimit {
		return ListServiceOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, listMinLimit, listMaxLimit,
		)
	}

	return ListServiceOrdersQuery{
		guard: guard.NewConstructorGuard(),
		page:  page,
		limit: limit,
	}, nil
}

// SetStatusFilter restricts the listing to orders in the given workflow status.
func (q *ListServiceOrdersQuery) SetStatusFilter(status serviceorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = &status
	return nil
}

// SetFinancialFilter restricts the listing to orders in the given financial status.
func (q *ListServiceOrdersQuery) SetFinancialFilter(financial serviceorder.FinancialStatus) error {
	if err := financial.Validate(); err != nil {
		return err
	}
	q.financial = &financial
	return nil
}

// SetPaymentTypeFilter restricts the listing to orders with the given payment type.
func (q *ListServiceOrdersQuery) SetPaymentTypeFilter(paymentType serviceorder.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	q.paymentType = &paymentType
	return nil
}

// SetCustomerNameFilter restricts the listing to customers whose personal,
// trade or corporate name contains the given text.
func (q *ListServiceOrdersQuery) SetCustomerNameFilter(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	q.customerName = name
	return nil
}

// SetEquipmentFilter restricts the listing to orders whose equipment name,
// model or brand contains the given text.
func (q *ListServiceOrdersQuery) SetEquipmentFilter(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValueIsRequiredError("equipment")
	}
	q.equipmentText = text
	return nil
}

// SetSerialNumberFilter restricts the listing to a single serial number.
func (q *ListServiceOrdersQuery) SetSerialNumberFilter(serialNumber string) error {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return errs.NewValueIsRequiredError("serialNumber")
	}
	q.serialNumber = serialNumber
	return nil
}

// SetCustomerFilter restricts the listing to a single customer's orders.
func (q *ListServiceOrdersQuery) SetCustomerFilter(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	q.customerID = &customerID
	return nil
}

// SetWarrantyFilter restricts the listing to warranty or non-warranty orders.
func (q *ListServiceOrdersQuery) SetWarrantyFilter(warranty bool) {
	q.warranty = &warranty
}

// SetEntryDateRange restricts the listing to orders opened within [from, to].
func (q *ListServiceOrdersQuery) SetEntryDateRange(from, to time.Time) error {
	if to.Before(from) {
		return errs.NewValueIsInvalidErrorWithCause(
			"entryDateTo",
			fmt.Errorf("%s precedes %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		)
	}
	q.entryDateFrom = &from
	q.entryDateTo = &to
	return nil
}

// Page returns the one-based page number.
func (q ListServiceOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListServiceOrdersQuery) Limit() int {
	return q.limit
}

// StatusFilter returns the workflow status filter, nil when unset.
func (q ListServiceOrdersQuery) StatusFilter() *serviceorder.Status {
	return q.status
}

// FinancialFilter returns the financial status filter, nil when unset.
func (q ListServiceOrdersQuery) FinancialFilter() *serviceorder.FinancialStatus {
	return q.financial
}

// PaymentTypeFilter returns the payment type filter, nil when unset.
func (q ListServiceOrdersQuery) PaymentTypeFilter() *serviceorder.PaymentType {
	return q.paymentType
}

// CustomerNameFilter returns the customer name filter, empty when unset.
func (q ListServiceOrdersQuery) CustomerNameFilter() string {
	return q.customerName
}

// EquipmentFilter returns the equipment text filter, empty when unset.
func (q ListServiceOrdersQuery) EquipmentFilter() string {
	return q.equipmentText
}

// SerialNumberFilter returns the serial number filter, empty when unset.
func (q ListServiceOrdersQuery) SerialNumberFilter() string {
	return q.serialNumber
}

// CustomerFilter returns the customer filter, nil when unset.
func (q ListServiceOrdersQuery) CustomerFilter() *kernel.UUID {
	return q.customerID
}

// WarrantyFilter returns the warranty filter, nil when unset.
func (q ListServiceOrdersQuery) WarrantyFilter() *bool {
	return q.warranty
}

// EntryDateFrom returns the start of the entry date filter, nil when unset.
func (q ListServiceOrdersQuery) EntryDateFrom() *time.Time {
	return q.entryDateFrom
}

// EntryDateTo returns the end of the entry date filter, nil when unset.
func (q ListServiceOrdersQuery) EntryDateTo() *time.Time {
	return q.entryDateTo
}

// Validate ensures the query was created through the constructor.
func (q ListServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListServiceOrdersQueryIsNotConstructed)
}
