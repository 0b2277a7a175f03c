package cart

import (
	"testing"

	"campuseats/internal/menu"
	"campuseats/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adobo   = menu.Item{ID: "1", Name: "Chicken Adobo Rice", Category: "Main Course", Price: 65, StallID: "main-canteen", Available: true}
	tapa    = menu.Item{ID: "2", Name: "Beef Tapa", Category: "Main Course", Price: 75, StallID: "main-canteen", Available: true}
	kape    = menu.Item{ID: "6", Name: "Iced Coffee", Category: "Beverages", Price: 45, StallID: "coffee-corner", Available: true}
	soldOut = menu.Item{ID: "9", Name: "Sisig", Category: "Main Course", Price: 80, StallID: "main-canteen", Available: false}
)

func TestAddItem(t *testing.T) {
	c := New()

	outcome, err := c.AddItem(adobo)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, outcome)

	outcome, err = c.AddItem(adobo)
	require.NoError(t, err)
	assert.Equal(t, OutcomeQuantityIncreased, outcome)

	lines := c.Lines()
	require.Len(t, lines, 1, "same item must not create a second line")
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemUnavailable(t *testing.T) {
	c := New()

	_, err := c.AddItem(soldOut)
	assert.ErrorIs(t, err, ErrItemUnavailable)
	assert.Equal(t, 0, c.Len())
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	mustAdd(t, c, adobo)
	mustAdd(t, c, tapa)

	t.Run("Increment", func(t *testing.T) {
		c.UpdateQuantity(adobo.ID, 2)
		assert.Equal(t, 3, c.Lines()[0].Quantity)
	})

	t.Run("DecrementToZeroRemoves", func(t *testing.T) {
		c.UpdateQuantity(tapa.ID, -1)
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, adobo.ID, c.Lines()[0].Item.ID)
	})

	t.Run("FloorsAtZero", func(t *testing.T) {
		c.UpdateQuantity(adobo.ID, -1000)
		assert.Equal(t, 0, c.Len(), "large negative delta removes the line, never goes negative")
	})

	t.Run("UnknownIDNoop", func(t *testing.T) {
		c.UpdateQuantity("ghost", 5)
		assert.Equal(t, 0, c.Len())
	})
}

func TestTotal(t *testing.T) {
	c := New()
	assert.Equal(t, 0.0, c.Total(), "empty cart totals zero")

	mustAdd(t, c, adobo) // 65
	mustAdd(t, c, adobo) // 130
	mustAdd(t, c, kape)  // 175
	assert.Equal(t, 175.0, c.Total())

	c.UpdateQuantity(adobo.ID, -1)
	assert.Equal(t, 110.0, c.Total())
}

// Total must equal the sum over surviving lines after any sequence of
// add/update calls, with no zero-quantity line left behind.
func TestTotalInvariantAfterMixedOps(t *testing.T) {
	c := New()
	mustAdd(t, c, adobo)
	mustAdd(t, c, tapa)
	mustAdd(t, c, kape)
	c.UpdateQuantity(adobo.ID, 4)
	c.UpdateQuantity(tapa.ID, -1)
	c.UpdateQuantity(kape.ID, 1)
	c.UpdateQuantity("ghost", 3)

	var want float64
	for _, line := range c.Lines() {
		require.GreaterOrEqual(t, line.Quantity, 1)
		want += line.Item.Price * float64(line.Quantity)
	}
	assert.Equal(t, want, c.Total())
}

func TestCheckout(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		c := New()
		_, err := c.Checkout(payment.MethodCash, "11:30")
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("MissingPaymentMethod", func(t *testing.T) {
		c := New()
		mustAdd(t, c, adobo)

		_, err := c.Checkout("", "11:30")
		assert.ErrorIs(t, err, ErrMissingPaymentMethod)
		assert.Equal(t, 1, c.Len(), "failed checkout must leave the cart unchanged")
	})

	t.Run("MissingPickupTime", func(t *testing.T) {
		c := New()
		mustAdd(t, c, adobo)

		_, err := c.Checkout(payment.MethodGCash, "")
		assert.ErrorIs(t, err, ErrMissingPickupTime)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Success", func(t *testing.T) {
		c := New()
		mustAdd(t, c, adobo)
		mustAdd(t, c, adobo)
		mustAdd(t, c, kape)

		preTotal := c.Total()

		req, err := c.Checkout(payment.MethodGCash, "11:30")
		require.NoError(t, err)

		assert.Equal(t, preTotal, req.TotalAmount)
		assert.Equal(t, payment.MethodGCash, req.PaymentMethod)
		assert.Equal(t, "11:30", req.PickupTime)
		assert.Regexp(t, `^ORD-\d{6}$`, req.OrderNumber)
		require.Len(t, req.Items, 2)
		assert.Equal(t, "Chicken Adobo Rice", req.Items[0].Name)
		assert.Equal(t, 2, req.Items[0].Quantity)
		assert.Equal(t, 65.0, req.Items[0].UnitPrice)

		assert.Equal(t, 0, c.Len(), "successful checkout clears the cart")
		assert.Equal(t, 0.0, c.Total())
	})

	t.Run("DistinctOrderNumbers", func(t *testing.T) {
		seen := map[string]bool{}
		for range 5 {
			c := New()
			mustAdd(t, c, kape)
			req, err := c.Checkout(payment.MethodCash, "12:00")
			require.NoError(t, err)
			assert.False(t, seen[req.OrderNumber])
			seen[req.OrderNumber] = true
		}
	})
}

func mustAdd(t *testing.T, c *Cart, it menu.Item) {
	t.Helper()
	_, err := c.AddItem(it)
	require.NoError(t, err)
}
