// Package serviceorder provides domain entities and business logic for
// service-order management in the workshop system. It implements the
// ServiceOrder aggregate root with lifecycle management, two independent
// status workflows and derived monetary totals.
//
// The package includes:
//   - ServiceOrder: The aggregate root that manages order identity, the
//     equipment record, billed items and the soft-delete lifecycle
//   - Status: The operational state machine
//     (ToConfirm -> Approved -> Ready -> Delivered, with Rejected re-open)
//   - FinancialStatus: The payment state machine
//     (Open/Owing/PartiallyPaid/Invoiced/Overdue -> Paid or Cancelled)
//   - ServiceItem: An immutable billable line with a derived total
//   - Totals: Order-level derived monetary fields
//
// Key business rules:
//   - Order numbers are positive, sequential and assigned exactly once
//   - Transitions not listed in a workflow's table are rejected,
//     including self-transitions; Delivered, Paid and Cancelled are terminal
//   - All monetary arithmetic is exact decimal; derived totals are
//     recomputed on every items/adjustments mutation and never trusted
//     from input
//   - Deleting an order is a soft mutation that hides it from reads
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package serviceorder
