package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"

	// legacyPaidLabel is the display text older clients stored as the status.
	legacyPaidLabel = "Đã thanh toán"
)

// ParseOrderStatus maps wire values onto the two canonical states. Anything
// that is not exactly "paid" (or the legacy paid label) is pending.
func ParseOrderStatus(s string) OrderStatus {
	switch strings.TrimSpace(s) {
	case string(StatusPaid), legacyPaidLabel:
		return StatusPaid
	default:
		return StatusPending
	}
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = ParseOrderStatus(raw)
	return nil
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentTransfer
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderNumber   int           `gorm:"not null;index:idx_order_period" json:"orderNumber"`
	Year          int           `gorm:"not null;index:idx_order_period" json:"year"`
	Month         int           `gorm:"not null;index:idx_order_period" json:"month"`
	TableNumber   int           `gorm:"not null" json:"tableNumber"`
	Items         []OrderItem   `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Status        OrderStatus   `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(16);not null;default:'cash'" json:"paymentMethod"`
	Discount      int           `gorm:"not null;default:0" json:"discount"`
	TotalAmount   int64         `gorm:"not null;default:0" json:"totalAmount"`
	Note          *string       `gorm:"type:text" json:"note,omitempty"`
	CreatedBy     string        `gorm:"type:varchar(32)" json:"createdBy,omitempty"`
	UpdatedBy     string        `gorm:"type:varchar(32)" json:"updatedBy,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o Order) IsPaid() bool { return o.Status == StatusPaid }

// OrderItem is one priced, quantified menu selection within an order.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	OrderID  uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
	Name     string `gorm:"type:varchar(120);not null" json:"name"`
	Price    int64  `gorm:"not null;default:0" json:"price"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`
	Note     string `gorm:"type:text" json:"note,omitempty"`
}

func (it OrderItem) LineTotal() int64 {
	return it.Price * int64(it.Quantity)
}

// OrderSequence holds the last order number issued in a calendar month.
type OrderSequence struct {
	Year  int `gorm:"primaryKey;autoIncrement:false"`
	Month int `gorm:"primaryKey;autoIncrement:false"`
	Value int `gorm:"not null;default:0"`
}
