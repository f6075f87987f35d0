package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
)

// CreateServiceOrderCommandHandler handles the business logic for opening
// a service order: verifying the customer, drawing the next order number
// and persisting the aggregate.
//
// The customer check and the field validations happen before the sequence
// is touched, so a rejected request never burns a number. The number draw
// itself sits outside the order transaction: if the insert fails
// afterwards, that number is lost and the next intake gets a fresh one.
type CreateServiceOrderCommandHandler struct {
	uowFactory UoWFactory
	sequence   OrderNumberSequence
}

// NewCreateServiceOrderCommandHandler creates a handler for order intake.
// Requires a UoWFactory for transactional persistence and the order
// number sequence.
func NewCreateServiceOrderCommandHandler(
	uowFactory UoWFactory,
	sequence OrderNumberSequence,
) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
	}
}

// Handle processes the intake command.
// Verifies the customer exists and is active, validates the command's
// optional fields, issues the next order number, builds the aggregate
// with intake defaults and persists it transactionally.
func (h *CreateServiceOrderCommandHandler) Handle(ctx context.Context, cmd CreateServiceOrderCommand) error {
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

	customer, err := uow.PersonRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		// An unknown customer is a bad argument on the intake request,
		// not a missing order.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		return err
	}
	if !customer.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerId",
			fmt.Errorf("customer %s is inactive", customer.ID()),
		)
	}

	now := time.Now()
	if err = serviceorder.ValidateAdjustments(cmd.TotalDiscount(), cmd.TotalAddition()); err != nil {
		return err
	}
	if expected := cmd.ExpectedDeliveryDate(); expected != nil {
		if err = serviceorder.ValidateExpectedDelivery(*expected, now); err != nil {
			return err
		}
	}

	orderNumber, err := h.sequence.Next(ctx)
	if err != nil {
		return err
	}

	order, err := serviceorder.NewServiceOrder(
		cmd.OrderID(), orderNumber, cmd.CustomerID(), cmd.Equipment(), now,
	)
	if err != nil {
		return err
	}

	order.SetNotes(cmd.Notes())
	order.SetWarranty(cmd.Warranty())
	order.SetIsReturn(cmd.IsReturn())
	order.SetItems(cmd.Items())
	if err = order.SetAdjustments(cmd.TotalDiscount(), cmd.TotalAddition()); err != nil {
		return err
	}
	if terms := cmd.PaymentTerms(); terms != nil {
		if err = order.SetPaymentTerms(*terms); err != nil {
			return err
		}
	}
	if expected := cmd.ExpectedDeliveryDate(); expected != nil {
		if err = order.ScheduleDelivery(*expected, now); err != nil {
			return err
		}
	}

	if err = uow.ServiceOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
