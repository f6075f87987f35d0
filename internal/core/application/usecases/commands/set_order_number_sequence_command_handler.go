package commands

import (
	"context"
)

// SetOrderNumberSequenceCommandHandler overwrites the order-number
// sequence. No unit of work: the counter store performs the write as a
// single atomic statement.
type SetOrderNumberSequenceCommandHandler struct {
	sequence OrderNumberSequence
}

// NewSetOrderNumberSequenceCommandHandler creates a handler for
// sequence overrides.
func NewSetOrderNumberSequenceCommandHandler(sequence OrderNumberSequence) SetOrderNumberSequenceCommandHandler {
	return SetOrderNumberSequenceCommandHandler{
		sequence: sequence,
	}
}

// Handle processes the override command.
func (h *SetOrderNumberSequenceCommandHandler) Handle(ctx context.Context, cmd SetOrderNumberSequenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sequence.Set(ctx, cmd.Value())
}
