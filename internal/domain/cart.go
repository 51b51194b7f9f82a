package domain

import "github.com/google/uuid"

// CartLine — позиция корзины со снимком карточки товара на момент добавления.
// Снимок нужен только для отображения, при оформлении заказа цены пересчитываются.
type CartLine struct {
	ProductID        uuid.UUID
	Name             string
	Price            int64
	PromotionalPrice *int64
	ImageURL         *string
	Quantity         int
}

func (l CartLine) EffectivePrice() int64 {
	return EffectivePrice(l.Price, l.PromotionalPrice)
}

func (l CartLine) LineTotal() int64 {
	return l.EffectivePrice() * int64(l.Quantity)
}

// Cart хранит выбор покупателя. На один товар приходится не больше одной позиции.
// Не потокобезопасен: каждая сессия работает со своим экземпляром.
type Cart struct {
	lines []CartLine
}

// NewCart восстанавливает корзину из сохранённых позиций.
// Позиции с неположительным количеством отбрасываются, дубликаты схлопываются.
func NewCart(lines ...CartLine) *Cart {
	c := &Cart{lines: make([]CartLine, 0, len(lines))}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.ProductID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// AddItem увеличивает количество на 1 или добавляет новую позицию.
func (c *Cart) AddItem(p *Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}

	c.lines = append(c.lines, CartLine{
		ProductID:        p.ID,
		Name:             p.Name,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		ImageURL:         p.ImageURL,
		Quantity:         1,
	})
}

// UpdateQuantity выставляет количество. quantity <= 0 удаляет позицию.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

func (c *Cart) RemoveItem(productID uuid.UUID) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Total — сумма по эффективным ценам, 0 для пустой корзины.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.LineTotal()
	}
	return total
}

// ItemCount — общее количество единиц товара.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines возвращает копию позиций в порядке добавления.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) index(productID uuid.UUID) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
