package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEquipment(t *testing.T) serviceorder.Equipment {
	t.Helper()
	equipment, err := serviceorder.NewEquipment("notebook", "XPS 13", "Dell", "SN-1", "bivolt", "charger")
	require.NoError(t, err)
	return equipment
}

func testItem(t *testing.T, description string, quantity int, unitValue int64) serviceorder.ServiceItem {
	t.Helper()
	item, err := serviceorder.NewServiceItem(
		description, quantity, decimal.NewFromInt(unitValue), decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)
	return item
}

func TestNewCreateServiceOrderCommand(t *testing.T) {
	t.Run("should create command with required fields", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewCreateServiceOrderCommand(orderID, customerID, testEquipment(t))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Equal(t, "notebook", cmd.Equipment().Name())
		assert.Nil(t, cmd.PaymentTerms())
		assert.Nil(t, cmd.ExpectedDeliveryDate())
		assert.True(t, cmd.TotalDiscount().Equal(decimal.Zero))
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		_, err := commands.NewCreateServiceOrderCommand(kernel.UUID{}, kernel.NewUUID(), testEquipment(t))
		require.Error(t, err)

		_, err = commands.NewCreateServiceOrderCommand(kernel.NewUUID(), kernel.UUID{}, testEquipment(t))
		require.Error(t, err)
	})

	t.Run("should reject invalid equipment", func(t *testing.T) {
		_, err := commands.NewCreateServiceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), serviceorder.Equipment{},
		)
		require.Error(t, err)
	})

	t.Run("should carry optional fields", func(t *testing.T) {
		cmd, err := commands.NewCreateServiceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testEquipment(t))
		require.NoError(t, err)

		cmd.SetNotes("does not power on")
		cmd.SetWarranty(true)
		cmd.SetIsReturn(true)
		cmd.SetItems([]serviceorder.ServiceItem{testItem(t, "diagnostics", 1, 50)})
		cmd.SetAdjustments(decimal.NewFromInt(5), decimal.NewFromInt(2))
		expected := time.Now().Add(48 * time.Hour)
		cmd.SetExpectedDeliveryDate(expected)

		terms, err := serviceorder.NewPaymentTerms(serviceorder.PaymentTypeInstallment, 3, 0)
		require.NoError(t, err)
		require.NoError(t, cmd.SetPaymentTerms(terms))

		assert.Equal(t, "does not power on", cmd.Notes())
		assert.True(t, cmd.Warranty())
		assert.True(t, cmd.IsReturn())
		assert.Len(t, cmd.Items(), 1)
		assert.True(t, cmd.TotalDiscount().Equal(decimal.NewFromInt(5)))
		assert.True(t, cmd.TotalAddition().Equal(decimal.NewFromInt(2)))
		require.NotNil(t, cmd.PaymentTerms())
		assert.Equal(t, 3, cmd.PaymentTerms().InstallmentCount())
		require.NotNil(t, cmd.ExpectedDeliveryDate())
		assert.Equal(t, expected, *cmd.ExpectedDeliveryDate())
	})

	t.Run("should reject invalid payment terms", func(t *testing.T) {
		cmd, err := commands.NewCreateServiceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testEquipment(t))
		require.NoError(t, err)

		err = cmd.SetPaymentTerms(serviceorder.PaymentTerms{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateServiceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateServiceOrderCommandIsNotConstructed)
	})
}
