package ledger

import (
	"errors"
	"strings"

	"nsdrink-pos/models"
)

var (
	ErrEmptyCart        = errors.New("ledger: order has no items")
	ErrNoSuchItem       = errors.New("ledger: no item at that position")
	ErrNegativeQuantity = errors.New("ledger: quantity must not be negative")
	ErrNegativePrice    = errors.New("ledger: price must not be negative")
	ErrEmptyName        = errors.New("ledger: item name is required")
)

// Cart is the mutable item list of an order being built or corrected.
type Cart struct {
	items []models.OrderItem
}

// NewCart starts a cart from a copy of items.
func NewCart(items ...models.OrderItem) *Cart {
	c := &Cart{}
	c.items = append(c.items, items...)
	return c
}

// Items returns a copy of the lines in display order.
func (c *Cart) Items() []models.OrderItem {
	out := make([]models.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// AddItem bumps the quantity of the line with the same name and price, or
// appends a new line with quantity 1.
func (c *Cart) AddItem(entry models.MenuItem) {
	for i := range c.items {
		if c.items[i].Name == entry.Name && c.items[i].Price == entry.Price {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.OrderItem{
		Name:     entry.Name,
		Price:    entry.Price,
		Quantity: 1,
	})
}

// ChangeQuantity is the +/- control: the result never drops below 1.
// Out of range indexes are ignored.
func (c *Cart) ChangeQuantity(index, delta int) {
	if !c.has(index) {
		return
	}
	q := c.items[index].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.items[index].Quantity = q
}

// SetQuantity is a direct field edit on an existing bill. Zero is allowed.
func (c *Cart) SetQuantity(index, quantity int) error {
	if !c.has(index) {
		return ErrNoSuchItem
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	c.items[index].Quantity = quantity
	return nil
}

func (c *Cart) SetPrice(index int, price int64) error {
	if !c.has(index) {
		return ErrNoSuchItem
	}
	if price < 0 {
		return ErrNegativePrice
	}
	c.items[index].Price = price
	return nil
}

func (c *Cart) SetName(index int, name string) error {
	if !c.has(index) {
		return ErrNoSuchItem
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.items[index].Name = name
	return nil
}

func (c *Cart) SetNote(index int, note string) error {
	if !c.has(index) {
		return ErrNoSuchItem
	}
	c.items[index].Note = note
	return nil
}

// RemoveItem drops the line at index. Out of range indexes are ignored.
func (c *Cart) RemoveItem(index int) {
	if !c.has(index) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

func (c *Cart) ClearAll() {
	c.items = nil
}

func (c *Cart) Subtotal() int64 {
	return Subtotal(c.items)
}

func (c *Cart) has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// Subtotal sums price*quantity over items.
func Subtotal(items []models.OrderItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

// ValidateItems checks the rules every stored line must meet. An empty list is valid
// here; whether an order may be empty depends on the operation.
func ValidateItems(items []models.OrderItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return ErrEmptyName
		}
		if it.Price < 0 {
			return ErrNegativePrice
		}
		if it.Quantity < 0 {
			return ErrNegativeQuantity
		}
	}
	return nil
}

// FilterMenu keeps the entries whose name contains query, ignoring case.
func FilterMenu(menu []models.MenuItem, query string) []models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return menu
	}
	var out []models.MenuItem
	for _, m := range menu {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}
