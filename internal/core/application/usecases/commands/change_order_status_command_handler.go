package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler moves an order through its
// operational workflow. Reaching Approved stamps the approval date and
// reaching Delivered stamps the delivery date, both handled by the
// aggregate.
type ChangeOrderStatusCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for operational
// status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory ServiceOrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Returns an ObjectNotFoundError for unknown orders and an
// InvalidStatusTransitionError for moves the workflow forbids.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = order.ChangeStatus(cmd.Target(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
