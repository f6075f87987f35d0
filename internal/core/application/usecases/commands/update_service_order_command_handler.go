package commands

import (
	"context"
	"time"
)

// UpdateServiceOrderCommandHandler applies partial updates to an existing
// service order. Loads the aggregate, applies each supplied patch and
// persists the result; the aggregate recomputes its derived totals
// whenever items or adjustments change.
type UpdateServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewUpdateServiceOrderCommandHandler creates a handler for order updates.
func NewUpdateServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) UpdateServiceOrderCommandHandler {
	return UpdateServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
// Returns an ObjectNotFoundError when the order does not exist or was
// soft deleted.
func (h *UpdateServiceOrderCommandHandler) Handle(ctx context.Context, cmd UpdateServiceOrderCommand) error {
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

	if equipment := cmd.Equipment(); equipment != nil {
		if err = order.SetEquipment(*equipment); err != nil {
			return err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		order.SetNotes(*notes)
	}
	if warranty := cmd.Warranty(); warranty != nil {
		order.SetWarranty(*warranty)
	}
	if isReturn := cmd.IsReturn(); isReturn != nil {
		order.SetIsReturn(*isReturn)
	}
	if items := cmd.Items(); items != nil {
		order.SetItems(*items)
	}
	if cmd.TotalDiscount() != nil || cmd.TotalAddition() != nil {
		totalDiscount := order.TotalDiscount()
		if cmd.TotalDiscount() != nil {
			totalDiscount = *cmd.TotalDiscount()
		}
		totalAddition := order.TotalAddition()
		if cmd.TotalAddition() != nil {
			totalAddition = *cmd.TotalAddition()
		}
		if err = order.SetAdjustments(totalDiscount, totalAddition); err != nil {
			return err
		}
	}
	if terms := cmd.PaymentTerms(); terms != nil {
		if err = order.SetPaymentTerms(*terms); err != nil {
			return err
		}
	}
	if status := cmd.Status(); status != nil {
		if err = order.OverrideStatus(*status); err != nil {
			return err
		}
	}
	if financial := cmd.Financial(); financial != nil {
		if err = order.OverrideFinancialStatus(*financial); err != nil {
			return err
		}
	}

	now := time.Now()
	if expected := cmd.ExpectedDeliveryDate(); expected != nil {
		if err = order.ScheduleDelivery(*expected, now); err != nil {
			return err
		}
	}
	if delivered := cmd.DeliveryDate(); delivered != nil {
		if err = order.RecordDelivery(*delivered, now); err != nil {
			return err
		}
	}
	if paid := cmd.TotalAmountPaid(); paid != nil {
		if err = order.SetTotalAmountPaid(*paid); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
