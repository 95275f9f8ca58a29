package entity

import "time"

// CartItem is one product line of the server-held cart.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// LineCents is the line total in minor units.
func (i CartItem) LineCents() int64 {
	return ToCents(i.Price) * int64(i.Quantity)
}

// Cart is the local copy of the cart the storefront API holds for a customer.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalCents sums every line rounded to cents first, so totals never drift
// from what the customer sees per line.
func (c *Cart) TotalCents() int64 {
	if c == nil {
		return 0
	}

	var total int64
	for _, item := range c.Items {
		total += item.LineCents()
	}

	return total
}

// Total is TotalCents in currency units.
func (c *Cart) Total() float64 {
	return FromCents(c.TotalCents())
}

// ItemCount sums quantities across lines.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}

	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// FindItem returns the index of the line with the given id, or -1.
func (c *Cart) FindItem(itemID string) int {
	if c == nil {
		return -1
	}

	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy safe to mutate.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return &Cart{}
	}

	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	return &Cart{Items: items, UpdatedAt: c.UpdatedAt}
}

// WithQuantity returns a copy with the line's quantity replaced.
// The second result is false when the line does not exist.
func (c *Cart) WithQuantity(itemID string, quantity int, now time.Time) (*Cart, bool) {
	idx := c.FindItem(itemID)
	if idx < 0 {
		return c.Clone(), false
	}

	next := c.Clone()
	next.Items[idx].Quantity = quantity
	next.UpdatedAt = now

	return next, true
}

// Without returns a copy with the line removed.
func (c *Cart) Without(itemID string, now time.Time) (*Cart, bool) {
	idx := c.FindItem(itemID)
	if idx < 0 {
		return c.Clone(), false
	}

	next := c.Clone()
	next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	next.UpdatedAt = now

	return next, true
}
