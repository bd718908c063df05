package desk

import (
	"context"

	"nsdrink-pos/dtos"
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"
	"nsdrink-pos/session"
)

// OrderEntry builds a new order from the menu and submits it.
type OrderEntry struct {
	menuAPI  MenuAPI
	orderAPI OrderAPI
	sess     session.Session
	settings

	menu       []models.MenuItem
	cart       *ledger.Cart
	table      int
	note       string
	nextNumber int
}

func NewOrderEntry(menu MenuAPI, orders OrderAPI, sess session.Session, opts ...Option) *OrderEntry {
	return &OrderEntry{
		menuAPI:    menu,
		orderAPI:   orders,
		sess:       sess,
		settings:   newSettings(opts),
		menu:       []models.MenuItem{},
		cart:       ledger.NewCart(),
		table:      1,
		nextNumber: 1,
	}
}

// Load fetches the menu and previews the next order number. Failed reads
// leave an empty menu and a preview of 1.
func (e *OrderEntry) Load(ctx context.Context) {
	menu, err := e.menuAPI.Menu(ctx)
	if err != nil {
		e.logger.Printf("desk: load menu: %v", err)
	}
	if menu == nil {
		menu = []models.MenuItem{}
	}
	e.menu = menu

	last, err := e.orderAPI.LastOrder(ctx)
	if err != nil {
		e.logger.Printf("desk: load last order: %v", err)
		last = nil
	}
	e.nextNumber = ledger.NextOrderNumber(last, e.clock().In(e.loc))
}

func (e *OrderEntry) Menu() []models.MenuItem { return e.menu }

// Search filters the loaded menu by case-insensitive substring.
func (e *OrderEntry) Search(query string) []models.MenuItem {
	return ledger.FilterMenu(e.menu, query)
}

func (e *OrderEntry) Cart() *ledger.Cart { return e.cart }

func (e *OrderEntry) Add(item models.MenuItem) { e.cart.AddItem(item) }

func (e *OrderEntry) Table() int { return e.table }

func (e *OrderEntry) SetTable(n int) error {
	if n < 1 {
		return ledger.ErrInvalidTable
	}
	e.table = n
	return nil
}

func (e *OrderEntry) SetNote(note string) { e.note = note }

// NextNumber is the client-side preview; the server assigns the real one.
func (e *OrderEntry) NextNumber() int { return e.nextNumber }

func (e *OrderEntry) Subtotal() int64 { return e.cart.Subtotal() }

// Submit sends the cart as a new pending order. An empty cart fails with
// ledger.ErrEmptyCart and nothing is sent. On success the cart is cleared.
func (e *OrderEntry) Submit(ctx context.Context) (*models.Order, error) {
	if e.cart.IsEmpty() {
		return nil, ledger.ErrEmptyCart
	}
	items := e.cart.Items()
	if err := ledger.ValidateItems(items); err != nil {
		return nil, err
	}

	in := dtos.CreateOrderInput{
		OrderNumber: e.nextNumber,
		TableNumber: e.table,
		Items:       dtos.FromOrderItems(items),
	}
	if e.note != "" {
		note := e.note
		in.Note = &note
	}

	order, err := e.orderAPI.CreateOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	e.cart.ClearAll()
	e.note = ""
	e.nextNumber = order.OrderNumber + 1
	return order, nil
}
