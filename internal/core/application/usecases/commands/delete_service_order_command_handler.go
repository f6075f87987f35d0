package commands

import (
	"context"
	"time"
)

// DeleteServiceOrderCommandHandler handles soft deletion of service
// orders. Deleting an already deleted order surfaces as not found,
// since reads exclude deleted records.
type DeleteServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewDeleteServiceOrderCommandHandler creates a handler for order deletion.
func NewDeleteServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) DeleteServiceOrderCommandHandler {
	return DeleteServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Marks the order inactive with a deletion timestamp and persists it.
func (h *DeleteServiceOrderCommandHandler) Handle(ctx context.Context, cmd DeleteServiceOrderCommand) error {
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

	order.MarkDeleted(time.Now())

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
