package commands_test

import (
	"testing"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderItemCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		itemID := kernel.NewUUID()

		cmd, err := commands.NewAddOrderItemCommand(orderID, itemID, "SKU-1", 2, decimal.RequireFromString("100.00"))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.ItemID().IsEqual(itemID))
		assert.Equal(t, "SKU-1", cmd.ProductID())
		assert.Equal(t, 2, cmd.Quantity())
		assert.True(t, cmd.UnitPriceAmount().Equal(decimal.RequireFromString("100.00")))
	})

	t.Run("should fail with blank product id", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), "  ", 1, decimal.NewFromInt(10))

		require.ErrorIs(t, err, commands.ErrProductIDIsRequired)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-1", 0, decimal.NewFromInt(10))

		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-1", 1, decimal.NewFromInt(-10))

		require.ErrorIs(t, err, commands.ErrUnitPriceIsInvalid)
	})

	t.Run("should fail with unconstructed identifiers", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(
			kernel.UUID{}, kernel.UUID{}, "SKU-1", 1, decimal.NewFromInt(10))

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.AddOrderItemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderItemCommandIsNotConstructed)
	})
}
