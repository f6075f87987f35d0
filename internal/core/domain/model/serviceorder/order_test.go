package serviceorder_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEquipment(t *testing.T) serviceorder.Equipment {
	t.Helper()
	equipment, err := serviceorder.NewEquipment("washing machine", "WM-200", "Acme", "SN-1234", "220V", "power cord")
	require.NoError(t, err)
	return equipment
}

func mustOrder(t *testing.T) *serviceorder.ServiceOrder {
	t.Helper()
	order, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), 1, kernel.NewUUID(), mustEquipment(t), time.Now(),
	)
	require.NoError(t, err)
	return order
}

func TestNewServiceOrder(t *testing.T) {
	t.Run("should apply intake defaults", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		entryDate := time.Now()

		order, err := serviceorder.NewServiceOrder(id, 42, customerID, mustEquipment(t), entryDate)

		require.NoError(t, err)
		assert.NoError(t, order.Validate())
		assert.True(t, order.ID().IsEqual(id))
		assert.Equal(t, int64(42), order.OrderNumber())
		assert.True(t, order.CustomerID().IsEqual(customerID))
		assert.Equal(t, serviceorder.StatusToConfirm, order.Status())
		assert.Equal(t, serviceorder.FinancialOpen, order.Financial())
		assert.Equal(t, serviceorder.PaymentTypeCash, order.PaymentTerms().PaymentType())
		assert.Equal(t, 1, order.PaymentTerms().InstallmentCount())
		assert.Equal(t, 0, order.PaymentTerms().PaidInstallments())
		assert.Equal(t, entryDate, order.EntryDate())
		assert.False(t, order.Warranty())
		assert.False(t, order.IsReturn())
		assert.True(t, order.IsActive())
		assert.Nil(t, order.DeletedAt())
		assert.Nil(t, order.ApprovalDate())
		assert.Nil(t, order.DeliveryDate())
		assert.Empty(t, order.Items())
		assert.True(t, order.ServicesSum().Equal(decimal.Zero))
		assert.True(t, order.TotalAmountLeft().Equal(decimal.Zero))
	})

	t.Run("should reject non positive order numbers", func(t *testing.T) {
		for _, number := range []int64{0, -1} {
			_, err := serviceorder.NewServiceOrder(
				kernel.NewUUID(), number, kernel.NewUUID(), mustEquipment(t), time.Now(),
			)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject empty customer", func(t *testing.T) {
		_, err := serviceorder.NewServiceOrder(
			kernel.NewUUID(), 1, kernel.UUID{}, mustEquipment(t), time.Now(),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid equipment", func(t *testing.T) {
		_, err := serviceorder.NewServiceOrder(
			kernel.NewUUID(), 1, kernel.NewUUID(), serviceorder.Equipment{}, time.Now(),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero entry date", func(t *testing.T) {
		_, err := serviceorder.NewServiceOrder(
			kernel.NewUUID(), 1, kernel.NewUUID(), mustEquipment(t), time.Time{},
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestServiceOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var order serviceorder.ServiceOrder
		assert.ErrorIs(t, order.Validate(), serviceorder.ErrServiceOrderIsNotConstructed)
	})

	t.Run("nil is not constructed", func(t *testing.T) {
		var order *serviceorder.ServiceOrder
		assert.ErrorIs(t, order.Validate(), serviceorder.ErrServiceOrderIsNotConstructed)
	})
}

func TestServiceOrder_Totals(t *testing.T) {
	t.Run("SetItems recomputes derived totals", func(t *testing.T) {
		order := mustOrder(t)

		order.SetItems([]serviceorder.ServiceItem{
			mustItem(t, "diagnostics", 2, decimal.NewFromInt(50), decimal.NewFromInt(5), decimal.Zero),
			mustItem(t, "cable", 1, decimal.NewFromInt(20), decimal.Zero, decimal.NewFromInt(2)),
		})

		assert.True(t, order.ServicesSum().Equal(decimal.NewFromInt(117)))
		assert.True(t, order.TotalAmountLeft().Equal(decimal.NewFromInt(117)))
	})

	t.Run("SetAdjustments recomputes amount left", func(t *testing.T) {
		order := mustOrder(t)
		order.SetItems([]serviceorder.ServiceItem{
			mustItem(t, "diagnostics", 2, decimal.NewFromInt(50), decimal.NewFromInt(5), decimal.Zero),
			mustItem(t, "cable", 1, decimal.NewFromInt(20), decimal.Zero, decimal.NewFromInt(2)),
		})

		err := order.SetAdjustments(decimal.NewFromInt(10), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, order.ServicesSum().Equal(decimal.NewFromInt(117)))
		assert.True(t, order.TotalAmountLeft().Equal(decimal.NewFromInt(107)))
	})

	t.Run("negative adjustments are rejected", func(t *testing.T) {
		order := mustOrder(t)

		err := order.SetAdjustments(decimal.NewFromInt(-1), decimal.Zero)
		require.Error(t, err)

		err = order.SetAdjustments(decimal.Zero, decimal.NewFromInt(-1))
		require.Error(t, err)
	})

	t.Run("negative amount left is preserved", func(t *testing.T) {
		order := mustOrder(t)
		order.SetItems([]serviceorder.ServiceItem{
			mustItem(t, "inspection", 1, decimal.NewFromInt(30), decimal.Zero, decimal.Zero),
		})

		err := order.SetAdjustments(decimal.NewFromInt(50), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, order.TotalAmountLeft().Equal(decimal.NewFromInt(-20)))
	})

	t.Run("clearing the items resets the sums", func(t *testing.T) {
		order := mustOrder(t)
		order.SetItems([]serviceorder.ServiceItem{
			mustItem(t, "inspection", 1, decimal.NewFromInt(30), decimal.Zero, decimal.Zero),
		})

		order.SetItems(nil)

		assert.True(t, order.ServicesSum().Equal(decimal.Zero))
		assert.True(t, order.TotalAmountLeft().Equal(decimal.Zero))
	})
}

func TestServiceOrder_Dates(t *testing.T) {
	now := time.Now()

	t.Run("ScheduleDelivery accepts a future date", func(t *testing.T) {
		order := mustOrder(t)
		expected := now.Add(48 * time.Hour)

		err := order.ScheduleDelivery(expected, now)

		require.NoError(t, err)
		require.NotNil(t, order.ExpectedDeliveryDate())
		assert.Equal(t, expected, *order.ExpectedDeliveryDate())
	})

	t.Run("ScheduleDelivery rejects a past date", func(t *testing.T) {
		order := mustOrder(t)

		err := order.ScheduleDelivery(now.Add(-time.Minute), now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("RecordDelivery allows up to one hour of clock skew", func(t *testing.T) {
		order := mustOrder(t)

		err := order.RecordDelivery(now.Add(59*time.Minute), now)

		require.NoError(t, err)
		require.NotNil(t, order.DeliveryDate())
	})

	t.Run("RecordDelivery rejects dates beyond the tolerance", func(t *testing.T) {
		order := mustOrder(t)

		err := order.RecordDelivery(now.Add(61*time.Minute), now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, order.DeliveryDate())
	})
}

func TestServiceOrder_ChangeStatus(t *testing.T) {
	now := time.Now()

	t.Run("approving stamps the approval date", func(t *testing.T) {
		order := mustOrder(t)

		err := order.ChangeStatus(serviceorder.StatusApproved, now)

		require.NoError(t, err)
		assert.Equal(t, serviceorder.StatusApproved, order.Status())
		require.NotNil(t, order.ApprovalDate())
		assert.Equal(t, now, *order.ApprovalDate())
	})

	t.Run("delivering stamps the delivery date when unset", func(t *testing.T) {
		order := mustOrder(t)
		require.NoError(t, order.ChangeStatus(serviceorder.StatusApproved, now))
		require.NoError(t, order.ChangeStatus(serviceorder.StatusReady, now))

		err := order.ChangeStatus(serviceorder.StatusDelivered, now)

		require.NoError(t, err)
		require.NotNil(t, order.DeliveryDate())
		assert.Equal(t, now, *order.DeliveryDate())
	})

	t.Run("delivering keeps an already recorded delivery date", func(t *testing.T) {
		order := mustOrder(t)
		recorded := now.Add(-2 * time.Hour)
		require.NoError(t, order.RecordDelivery(recorded, now))
		require.NoError(t, order.ChangeStatus(serviceorder.StatusApproved, now))
		require.NoError(t, order.ChangeStatus(serviceorder.StatusReady, now))

		err := order.ChangeStatus(serviceorder.StatusDelivered, now)

		require.NoError(t, err)
		assert.Equal(t, recorded, *order.DeliveryDate())
	})

	t.Run("invalid transitions leave the order unchanged", func(t *testing.T) {
		order := mustOrder(t)

		err := order.ChangeStatus(serviceorder.StatusDelivered, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, serviceorder.StatusToConfirm, order.Status())
		assert.Nil(t, order.DeliveryDate())
	})
}

func TestServiceOrder_ChangeFinancialStatus(t *testing.T) {
	t.Run("allowed transition moves the state", func(t *testing.T) {
		order := mustOrder(t)

		err := order.ChangeFinancialStatus(serviceorder.FinancialPartiallyPaid)

		require.NoError(t, err)
		assert.Equal(t, serviceorder.FinancialPartiallyPaid, order.Financial())
	})

	t.Run("invalid transition leaves the state unchanged", func(t *testing.T) {
		order := mustOrder(t)
		require.NoError(t, order.ChangeFinancialStatus(serviceorder.FinancialPaid))

		err := order.ChangeFinancialStatus(serviceorder.FinancialOverdue)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, serviceorder.FinancialPaid, order.Financial())
	})
}

func TestServiceOrder_Overrides(t *testing.T) {
	t.Run("OverrideStatus bypasses the workflow but not enum validity", func(t *testing.T) {
		order := mustOrder(t)

		require.NoError(t, order.OverrideStatus(serviceorder.StatusDelivered))
		assert.Equal(t, serviceorder.StatusDelivered, order.Status())

		err := order.OverrideStatus(serviceorder.StatusUnknown)
		require.Error(t, err)
	})

	t.Run("OverrideFinancialStatus bypasses the workflow but not enum validity", func(t *testing.T) {
		order := mustOrder(t)

		require.NoError(t, order.OverrideFinancialStatus(serviceorder.FinancialCancelled))
		assert.Equal(t, serviceorder.FinancialCancelled, order.Financial())

		err := order.OverrideFinancialStatus(serviceorder.FinancialStatus(99))
		require.Error(t, err)
	})
}

func TestServiceOrder_MarkDeleted(t *testing.T) {
	order := mustOrder(t)
	now := time.Now()

	order.MarkDeleted(now)

	assert.False(t, order.IsActive())
	require.NotNil(t, order.DeletedAt())
	assert.Equal(t, now, *order.DeletedAt())
}

func TestRestoreServiceOrder(t *testing.T) {
	t.Run("should rebuild the aggregate and recompute the totals", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		entryDate := time.Now().Add(-72 * time.Hour)
		approvalDate := entryDate.Add(2 * time.Hour)
		terms, err := serviceorder.NewPaymentTerms(serviceorder.PaymentTypeInstallment, 3, 1)
		require.NoError(t, err)

		order, err := serviceorder.RestoreServiceOrder(serviceorder.RestoreServiceOrderParams{
			ID:           id,
			OrderNumber:  7,
			CustomerID:   customerID,
			Equipment:    mustEquipment(t),
			Notes:        "handle with care",
			Warranty:     true,
			Status:       serviceorder.StatusApproved,
			Financial:    serviceorder.FinancialPartiallyPaid,
			EntryDate:    entryDate,
			ApprovalDate: &approvalDate,
			Terms:        terms,
			Items: []serviceorder.ServiceItem{
				mustItem(t, "diagnostics", 2, decimal.NewFromInt(50), decimal.NewFromInt(5), decimal.Zero),
				mustItem(t, "cable", 1, decimal.NewFromInt(20), decimal.Zero, decimal.NewFromInt(2)),
			},
			TotalDiscount:   decimal.NewFromInt(10),
			TotalAddition:   decimal.Zero,
			TotalAmountPaid: decimal.NewFromInt(40),
			IsActive:        true,
		})

		require.NoError(t, err)
		assert.NoError(t, order.Validate())
		assert.True(t, order.ID().IsEqual(id))
		assert.Equal(t, int64(7), order.OrderNumber())
		assert.Equal(t, serviceorder.StatusApproved, order.Status())
		assert.Equal(t, serviceorder.FinancialPartiallyPaid, order.Financial())
		assert.Equal(t, "handle with care", order.Notes())
		assert.True(t, order.Warranty())
		require.NotNil(t, order.ApprovalDate())
		assert.True(t, order.ServicesSum().Equal(decimal.NewFromInt(117)))
		assert.True(t, order.TotalAmountLeft().Equal(decimal.NewFromInt(107)))
		assert.True(t, order.TotalAmountPaid().Equal(decimal.NewFromInt(40)))
	})

	t.Run("should accept stored past dates without clock checks", func(t *testing.T) {
		past := time.Now().Add(-240 * time.Hour)
		expected := past.Add(24 * time.Hour)

		order, err := serviceorder.RestoreServiceOrder(serviceorder.RestoreServiceOrderParams{
			ID:                   kernel.NewUUID(),
			OrderNumber:          8,
			CustomerID:           kernel.NewUUID(),
			Equipment:            mustEquipment(t),
			Status:               serviceorder.StatusDelivered,
			Financial:            serviceorder.FinancialPaid,
			EntryDate:            past,
			ExpectedDeliveryDate: &expected,
			DeliveryDate:         &expected,
			Terms:                serviceorder.DefaultPaymentTerms(),
			TotalDiscount:        decimal.Zero,
			TotalAddition:        decimal.Zero,
			TotalAmountPaid:      decimal.Zero,
			IsActive:             true,
		})

		require.NoError(t, err)
		require.NotNil(t, order.ExpectedDeliveryDate())
		require.NotNil(t, order.DeliveryDate())
	})

	t.Run("should reject invalid stored enum values", func(t *testing.T) {
		_, err := serviceorder.RestoreServiceOrder(serviceorder.RestoreServiceOrderParams{
			ID:              kernel.NewUUID(),
			OrderNumber:     9,
			CustomerID:      kernel.NewUUID(),
			Equipment:       mustEquipment(t),
			Status:          serviceorder.Status(77),
			Financial:       serviceorder.FinancialOpen,
			EntryDate:       time.Now(),
			Terms:           serviceorder.DefaultPaymentTerms(),
			TotalDiscount:   decimal.Zero,
			TotalAddition:   decimal.Zero,
			TotalAmountPaid: decimal.Zero,
			IsActive:        true,
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
