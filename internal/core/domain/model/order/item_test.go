package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("Laptop", 1, 1000.0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Laptop", item.ProductName())
		assert.Equal(t, 1, item.Quantity())
		assert.InDelta(t, 1000.0, item.Price(), 0.0001)
	})

	t.Run("should allow zero price", func(t *testing.T) {
		item, err := order.NewItem("Sticker", 10, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.Price(), 0.0001)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := order.NewItem("", 1, 10)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem("Laptop", 0, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewItem("Laptop", -2, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem("Laptop", 1, -0.01)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price is invalid")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewItem("", 0, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "price is invalid")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
