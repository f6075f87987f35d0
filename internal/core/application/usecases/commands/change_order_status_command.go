package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a workflow-checked move of the
// operational status. The transition is asserted against the current
// state by the aggregate; an illegal move fails naming both states.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  serviceorder.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to advance the
// operational workflow. The target must be a valid status; whether the
// transition is allowed depends on the order's current state and is
// checked by the handler.
func NewChangeOrderStatusCommand(orderID kernel.UUID, target serviceorder.Status) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested operational status.
func (c ChangeOrderStatusCommand) Target() serviceorder.Status {
	return c.target
}
