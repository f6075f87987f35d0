package commands

import (
	"context"
)

// ChangeFinancialStatusCommandHandler moves an order through its
// payment workflow. Used both by the HTTP surface and by the overdue
// flagging job.
type ChangeFinancialStatusCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewChangeFinancialStatusCommandHandler creates a handler for payment
// status transitions.
func NewChangeFinancialStatusCommandHandler(uowFactory ServiceOrderUoWFactory) ChangeFinancialStatusCommandHandler {
	return ChangeFinancialStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Returns an ObjectNotFoundError for unknown orders and an
// InvalidStatusTransitionError for moves the workflow forbids.
func (h *ChangeFinancialStatusCommandHandler) Handle(ctx context.Context, cmd ChangeFinancialStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.ServiceOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.ChangeFinancialStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
