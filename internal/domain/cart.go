package domain

import "github.com/shopspring/decimal"

// CartLine представляет одну позицию корзины: товар и его количество.
// Инвариант: в корзине не более одной позиции на каждый ID товара.
type CartLine struct {
	Product Product
	Qty     int
}

// Cart — упорядоченный набор позиций; порядок добавления сохраняется.
// Оригинальная версия ограничивала корзину десятью позициями; здесь контейнер
// растёт динамически, поэтому ветки переполнения нет.
type Cart struct {
	lines []CartLine
}

// NewCart возвращает пустую корзину.
func NewCart() *Cart {
	return &Cart{}
}

// AddProduct добавляет товар: существующая позиция инкрементируется,
// новая попадает в конец списка с количеством 1.
func (c *Cart) AddProduct(p Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Qty: 1})
}

// Lines возвращает копию позиций в порядке добавления.
func (c *Cart) Lines() []CartLine {
	result := make([]CartLine, len(c.lines))
	copy(result, c.lines)
	return result
}

// Total возвращает сумму price*qty по всем позициям; для пустой корзины — ноль.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return total
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len возвращает количество различных позиций.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear опустошает корзину после успешного оформления заказа.
func (c *Cart) Clear() {
	c.lines = nil
}
