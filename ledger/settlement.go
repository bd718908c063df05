package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"nsdrink-pos/models"
)

var (
	ErrInvalidDiscount      = errors.New("ledger: discount must be one of 0, 5, 10, 15, 20")
	ErrInvalidPaymentMethod = errors.New("ledger: payment method must be cash or transfer")
	ErrInvalidTable         = errors.New("ledger: table number must be positive")
	ErrAlreadyPaid          = errors.New("ledger: order is already paid")
	ErrNotPaid              = errors.New("ledger: order is not paid")
)

// AllowedDiscounts is the closed set of discount percentages.
var AllowedDiscounts = []int{0, 5, 10, 15, 20}

var hundred = decimal.NewFromInt(100)

type Totals struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	Total          int64 `json:"total"`
}

func ValidateDiscount(percent int) error {
	for _, d := range AllowedDiscounts {
		if d == percent {
			return nil
		}
	}
	return fmt.Errorf("%w: got %d", ErrInvalidDiscount, percent)
}

// CalculateTotals applies a percentage discount to the current items. The
// total is rounded half-up to whole units and the discount amount is whatever
// makes subtotal = discount + total hold exactly. Percentages outside the
// allowed set are not rejected here; callers validate at their boundary.
func CalculateTotals(items []models.OrderItem, discountPercent int) Totals {
	sub := Subtotal(items)
	total := decimal.NewFromInt(sub).
		Mul(decimal.NewFromInt(int64(100 - discountPercent))).
		Div(hundred).
		Round(0).
		IntPart()
	return Totals{
		Subtotal:       sub,
		DiscountAmount: sub - total,
		Total:          total,
	}
}

// Recompute refreshes the persisted total from the order's items and discount.
func Recompute(o *models.Order) Totals {
	t := CalculateTotals(o.Items, o.Discount)
	o.TotalAmount = t.Total
	return t
}

// Edits is a partial change to an order. Nil fields are left alone; a nil
// Items slice keeps the current lines, an empty non-nil slice clears them.
type Edits struct {
	Items         []models.OrderItem
	TableNumber   *int
	Discount      *int
	PaymentMethod *models.PaymentMethod
	Note          *string
}

// ApplyEdits validates e, applies it to o and recomputes the total. The
// status is never touched, so a paid order can be corrected in place.
// On error o is unchanged.
func ApplyEdits(o *models.Order, e Edits) error {
	if e.Items != nil {
		if err := ValidateItems(e.Items); err != nil {
			return err
		}
	}
	if e.TableNumber != nil && *e.TableNumber < 1 {
		return ErrInvalidTable
	}
	if e.Discount != nil {
		if err := ValidateDiscount(*e.Discount); err != nil {
			return err
		}
	}
	if e.PaymentMethod != nil && !e.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	if e.Items != nil {
		items := make([]models.OrderItem, len(e.Items))
		copy(items, e.Items)
		o.Items = items
	}
	if e.TableNumber != nil {
		o.TableNumber = *e.TableNumber
	}
	if e.Discount != nil {
		o.Discount = *e.Discount
	}
	if e.PaymentMethod != nil {
		o.PaymentMethod = *e.PaymentMethod
	}
	if e.Note != nil {
		o.Note = e.Note
	}
	Recompute(o)
	return nil
}

// Settle moves a pending order to paid with the given method and stamps the
// final total. Empty orders and zero totals are accepted.
func Settle(o *models.Order, method models.PaymentMethod) error {
	if o.IsPaid() {
		return ErrAlreadyPaid
	}
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	if err := ValidateDiscount(o.Discount); err != nil {
		return err
	}
	o.Status = models.StatusPaid
	o.PaymentMethod = method
	Recompute(o)
	return nil
}

// Reopen moves a paid order back to pending.
func Reopen(o *models.Order) error {
	if !o.IsPaid() {
		return ErrNotPaid
	}
	o.Status = models.StatusPending
	return nil
}
