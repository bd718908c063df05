package dtos

import (
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"
)

type OrderItemInput struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"gte=0"`
	Quantity int    `json:"quantity" binding:"gte=0"`
	Note     string `json:"note,omitempty"`
}

// CreateOrderInput is the body of POST /orders. OrderNumber is the client's
// preview; the server assigns the real number.
type CreateOrderInput struct {
	OrderNumber int              `json:"orderNumber,omitempty"`
	TableNumber int              `json:"tableNumber" binding:"required,min=1"`
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Note        *string          `json:"note,omitempty"`
}

// UpdateOrderInput is the body of PUT /orders/:id. Absent fields are kept.
// TotalAmount is informational: the server always recomputes it.
type UpdateOrderInput struct {
	Status        *string          `json:"status,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash transfer"`
	TotalAmount   *int64           `json:"totalAmount,omitempty"`
	Discount      *int             `json:"discount,omitempty" binding:"omitempty,discount"`
	Items         []OrderItemInput `json:"items" binding:"omitempty,dive"`
	TableNumber   *int             `json:"tableNumber,omitempty" binding:"omitempty,min=1"`
	Note          *string          `json:"note,omitempty"`
	Phone         string           `json:"phone,omitempty"`
}

// Edits converts the body into a ledger edit set.
func (in UpdateOrderInput) Edits() ledger.Edits {
	e := ledger.Edits{
		TableNumber: in.TableNumber,
		Discount:    in.Discount,
		Note:        in.Note,
	}
	if in.Items != nil {
		e.Items = ToOrderItems(in.Items)
	}
	if in.PaymentMethod != nil {
		m := models.PaymentMethod(*in.PaymentMethod)
		e.PaymentMethod = &m
	}
	return e
}

func ToOrderItems(in []OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, len(in))
	for i, it := range in {
		items[i] = models.OrderItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity, Note: it.Note}
	}
	return items
}

func FromOrderItems(items []models.OrderItem) []OrderItemInput {
	out := make([]OrderItemInput, len(items))
	for i, it := range items {
		out[i] = OrderItemInput{Name: it.Name, Price: it.Price, Quantity: it.Quantity, Note: it.Note}
	}
	return out
}

type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type PageMeta struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalOrders     int64 `json:"totalOrders"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	Limit           int   `json:"limit"`
}

type OrderPage struct {
	Orders     []models.Order `json:"orders"`
	Pagination PageMeta       `json:"pagination"`
}

// CompletedQuery filters paid orders. Dates are YYYY-MM-DD, inclusive.
type CompletedQuery struct {
	StartDate     string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	PaymentMethod string `form:"paymentMethod" binding:"omitempty,oneof=cash transfer"`
}

type CompletedResponse struct {
	Orders   []models.Order     `json:"orders"`
	Revenue  ledger.Revenue     `json:"revenue"`
	TopItems []ledger.ItemCount `json:"topItems"`
}

type DashboardResponse struct {
	Weekly   []ledger.DailyBucket `json:"weekly"`
	Today    ledger.Split         `json:"today"`
	TopItems []ledger.ItemCount   `json:"topItems"`
}
