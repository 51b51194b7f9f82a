package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) *int64 { return &v }

func product(name string, p int64, promo *int64) *Product {
	return &Product{ID: uuid.New(), Name: name, Price: p, PromotionalPrice: promo}
}

func TestCart_AddItemTwiceMergesLine(t *testing.T) {
	c := NewCart()
	sofa := product("Sofa", 150000, nil)

	c.AddItem(sofa)
	c.AddItem(sofa)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Sofa", lines[0].Name)
}

func TestCart_UpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, q := range []int{0, -1} {
		c := NewCart()
		chair := product("Chair", 20000, nil)
		c.AddItem(chair)

		c.UpdateQuantity(chair.ID, q)
		assert.True(t, c.IsEmpty(), "quantity %d", q)
	}
}

func TestCart_UpdateQuantitySetsExactly(t *testing.T) {
	c := NewCart()
	table := product("Table", 50000, nil)
	c.AddItem(table)

	c.UpdateQuantity(table.ID, 250)
	assert.Equal(t, 250, c.ItemCount())

	c.UpdateQuantity(uuid.New(), 3)
	assert.Equal(t, 250, c.ItemCount())
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	c := NewCart()
	c.AddItem(product("Lamp", 7000, nil))

	c.RemoveItem(uuid.New())
	assert.Len(t, c.Lines(), 1)
}

func TestCart_TotalUsesEffectivePrice(t *testing.T) {
	c := NewCart()
	assert.Zero(t, c.Total())

	discounted := product("Bed", 300000, price(250000))
	higherPromo := product("Shelf", 10000, price(12000))
	c.AddItem(discounted)
	c.AddItem(higherPromo)
	c.UpdateQuantity(higherPromo.ID, 3)

	assert.Equal(t, int64(250000+3*10000), c.Total())
	assert.Equal(t, 4, c.ItemCount())

	var sum int64
	for _, l := range c.Lines() {
		sum += l.EffectivePrice() * int64(l.Quantity)
	}
	assert.Equal(t, sum, c.Total())
}

func TestCart_Clear(t *testing.T) {
	c := NewCart()
	c.AddItem(product("Desk", 40000, nil))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.ItemCount())
}

func TestNewCart_NormalizesLines(t *testing.T) {
	id := uuid.New()
	c := NewCart(
		CartLine{ProductID: id, Price: 100, Quantity: 1},
		CartLine{ProductID: id, Price: 100, Quantity: 2},
		CartLine{ProductID: uuid.New(), Price: 100, Quantity: 0},
	)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := NewCart()
	c.AddItem(product("Stool", 5000, nil))

	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, c.ItemCount())
}
