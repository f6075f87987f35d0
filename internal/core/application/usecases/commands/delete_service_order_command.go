package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrDeleteServiceOrderCommandIsNotConstructed = errors.New(
	"DeleteServiceOrderCommand must be created via NewDeleteServiceOrderCommand constructor",
)

// DeleteServiceOrderCommand represents a request to soft delete a
// service order. The record stays in storage for audit; it just stops
// appearing in reads, and its number is never reissued.
type DeleteServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteServiceOrderCommand creates a command to soft delete an order.
func NewDeleteServiceOrderCommand(orderID kernel.UUID) (DeleteServiceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteServiceOrderCommand{}, err
	}

	return DeleteServiceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
