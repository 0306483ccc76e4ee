package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("computes total from unit price and quantity", func(t *testing.T) {
		o, err := NewOrder("rahul_21", 3, "Masala Dosa", 45, 3)
		require.NoError(t, err)

		assert.Equal(t, 135.0, o.Total())
		assert.Equal(t, 3, o.Quantity())
		assert.Equal(t, StatusPending, o.Status())
		assert.Nil(t, o.PaidAt())
		assert.True(t, strings.HasPrefix(o.Number(), "FOOD_"))
	})

	t.Run("clamps quantity below one", func(t *testing.T) {
		for _, qty := range []int{0, -5} {
			o, err := NewOrder("rahul_21", 3, "Masala Dosa", 45, qty)
			require.NoError(t, err)
			assert.Equal(t, 1, o.Quantity())
			assert.Equal(t, 45.0, o.Total())
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewOrder("", 3, "Masala Dosa", 45, 1)
		assert.Error(t, err)

		_, err = NewOrder("rahul_21", 3, "", 45, 1)
		assert.Error(t, err)

		_, err = NewOrder("rahul_21", 3, "Masala Dosa", -1, 1)
		assert.Error(t, err)
	})

	t.Run("order numbers are unique", func(t *testing.T) {
		a, err := NewOrder("rahul_21", 3, "Masala Dosa", 45, 1)
		require.NoError(t, err)
		b, err := NewOrder("rahul_21", 3, "Masala Dosa", 45, 1)
		require.NoError(t, err)
		assert.NotEqual(t, a.Number(), b.Number())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o, err := NewOrder("rahul_21", 3, "Masala Dosa", 45, 2)
	require.NoError(t, err)

	require.NoError(t, o.MarkPaid())
	assert.Equal(t, StatusPaid, o.Status())
	require.NotNil(t, o.PaidAt())
	assert.False(t, o.IsPending())

	err = o.MarkPaid()
	assert.Error(t, err)
}
