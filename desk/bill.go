package desk

import (
	"context"

	"nsdrink-pos/dtos"
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"
	"nsdrink-pos/session"
)

// BillEditor corrects and settles an order that already exists. Edits stay
// local until Save or Settle succeeds; a failed write leaves both the saved
// copy and the pending edits as they were.
type BillEditor struct {
	orderAPI OrderAPI
	sess     session.Session
	settings

	saved    models.Order
	cart     *ledger.Cart
	table    int
	discount int
	method   models.PaymentMethod
	note     *string
}

func NewBillEditor(orders OrderAPI, sess session.Session, order models.Order, opts ...Option) *BillEditor {
	b := &BillEditor{orderAPI: orders, sess: sess, settings: newSettings(opts)}
	b.reset(order)
	return b
}

func (b *BillEditor) reset(o models.Order) {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	b.saved = o
	b.cart = ledger.NewCart(o.Items...)
	b.table = o.TableNumber
	b.discount = o.Discount
	b.method = o.PaymentMethod
	if !b.method.Valid() {
		b.method = models.PaymentCash
	}
	b.note = nil
	if o.Note != nil {
		n := *o.Note
		b.note = &n
	}
}

// Order is the last copy the server confirmed.
func (b *BillEditor) Order() models.Order {
	o := b.saved
	o.Items = append([]models.OrderItem(nil), b.saved.Items...)
	return o
}

// Cart exposes the line edits: quantity, price, name and note.
func (b *BillEditor) Cart() *ledger.Cart { return b.cart }

// RemoveItem drops a line of the saved order. confirmed must be true.
func (b *BillEditor) RemoveItem(index int, confirmed bool) error {
	if index < 0 || index >= b.cart.Len() {
		return ledger.ErrNoSuchItem
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	b.cart.RemoveItem(index)
	return nil
}

func (b *BillEditor) SetTable(n int) error {
	if n < 1 {
		return ledger.ErrInvalidTable
	}
	b.table = n
	return nil
}

func (b *BillEditor) SetDiscount(percent int) error {
	if err := ledger.ValidateDiscount(percent); err != nil {
		return err
	}
	b.discount = percent
	return nil
}

func (b *BillEditor) SetPaymentMethod(m models.PaymentMethod) error {
	if !m.Valid() {
		return ledger.ErrInvalidPaymentMethod
	}
	b.method = m
	return nil
}

func (b *BillEditor) SetNote(note string) {
	b.note = &note
}

// Totals reflects the pending edits.
func (b *BillEditor) Totals() ledger.Totals {
	return ledger.CalculateTotals(b.cart.Items(), b.discount)
}

func (b *BillEditor) checkAccess() error {
	if b.saved.IsPaid() && !b.sess.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// draft applies the pending edits to a copy of the saved order.
func (b *BillEditor) draft() (models.Order, error) {
	d := b.Order()
	table, discount, method := b.table, b.discount, b.method
	err := ledger.ApplyEdits(&d, ledger.Edits{
		Items:         b.cart.Items(),
		TableNumber:   &table,
		Discount:      &discount,
		PaymentMethod: &method,
		Note:          b.note,
	})
	return d, err
}

func (b *BillEditor) input(d models.Order) dtos.UpdateOrderInput {
	method := string(d.PaymentMethod)
	total := d.TotalAmount
	discount := d.Discount
	table := d.TableNumber
	return dtos.UpdateOrderInput{
		PaymentMethod: &method,
		TotalAmount:   &total,
		Discount:      &discount,
		Items:         dtos.FromOrderItems(d.Items),
		TableNumber:   &table,
		Note:          d.Note,
		Phone:         b.sess.Phone,
	}
}

// Save writes the pending edits without changing the status.
func (b *BillEditor) Save(ctx context.Context) (*models.Order, error) {
	if err := b.checkAccess(); err != nil {
		return nil, err
	}
	d, err := b.draft()
	if err != nil {
		return nil, err
	}

	updated, err := b.orderAPI.UpdateOrder(ctx, b.saved.ID, b.input(d))
	if err != nil {
		return nil, err
	}
	b.reset(*updated)
	return updated, nil
}

// Settle writes the pending edits and marks the order paid with the chosen
// payment method. A paid order fails with ledger.ErrAlreadyPaid.
func (b *BillEditor) Settle(ctx context.Context) (*models.Order, error) {
	if b.saved.IsPaid() {
		return nil, ledger.ErrAlreadyPaid
	}
	d, err := b.draft()
	if err != nil {
		return nil, err
	}
	if err := ledger.Settle(&d, b.method); err != nil {
		return nil, err
	}

	in := b.input(d)
	status := string(models.StatusPaid)
	in.Status = &status
	updated, err := b.orderAPI.UpdateOrder(ctx, b.saved.ID, in)
	if err != nil {
		return nil, err
	}
	b.reset(*updated)
	return updated, nil
}

// Reopen moves a paid order back to pending. Admins only.
func (b *BillEditor) Reopen(ctx context.Context) (*models.Order, error) {
	if !b.sess.IsAdmin() {
		return nil, ErrForbidden
	}
	if !b.saved.IsPaid() {
		return nil, ledger.ErrNotPaid
	}
	updated, err := b.orderAPI.ReopenOrder(ctx, b.saved.ID)
	if err != nil {
		return nil, err
	}
	b.reset(*updated)
	return updated, nil
}
