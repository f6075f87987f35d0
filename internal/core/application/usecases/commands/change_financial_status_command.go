package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"
)

var ErrChangeFinancialStatusCommandIsNotConstructed = errors.New(
	"ChangeFinancialStatusCommand must be created via NewChangeFinancialStatusCommand constructor",
)

// ChangeFinancialStatusCommand represents a workflow-checked move of
// the payment status, independent of the operational workflow.
type ChangeFinancialStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  serviceorder.FinancialStatus

	guard guard.ConstructorGuard
}

// NewChangeFinancialStatusCommand creates a command to advance the
// payment workflow.
func NewChangeFinancialStatusCommand(
	orderID kernel.UUID,
	target serviceorder.FinancialStatus,
) (ChangeFinancialStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return ChangeFinancialStatusCommand{}, err
	}

	return ChangeFinancialStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeFinancialStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeFinancialStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c ChangeFinancialStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested financial status.
func (c ChangeFinancialStatusCommand) Target() serviceorder.FinancialStatus {
	return c.target
}
