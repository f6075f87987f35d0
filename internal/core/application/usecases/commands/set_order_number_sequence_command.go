package commands

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrSetOrderNumberSequenceCommandIsNotConstructed = errors.New(
	"SetOrderNumberSequenceCommand must be created via NewSetOrderNumberSequenceCommand constructor",
)

// SetOrderNumberSequenceCommand represents an administrative override
// of the order-number sequence, used to align the counter with
// pre-existing paper records when the workshop migrates. The next
// issued number will be value+1.
type SetOrderNumberSequenceCommand struct { //nolint:recvcheck //using for validation
	value int64

	guard guard.ConstructorGuard
}

// NewSetOrderNumberSequenceCommand creates a command to overwrite the
// sequence. The value must be at least 1.
func NewSetOrderNumberSequenceCommand(value int64) (SetOrderNumberSequenceCommand, error) {
	if value < 1 {
		return SetOrderNumberSequenceCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	return SetOrderNumberSequenceCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderNumberSequenceCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderNumberSequenceCommandIsNotConstructed)
}

// Value returns the number the sequence is set to.
func (c SetOrderNumberSequenceCommand) Value() int64 {
	return c.value
}
