package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
)

// Orders fetches one page of orders, newest first.
func (c *Client) Orders(ctx context.Context, page, limit int) (*dtos.OrderPage, error) {
	var res dtos.OrderPage
	if err := c.do(ctx, http.MethodGet, "/orders", pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// LastOrder returns nil, nil when no order exists yet.
func (c *Client) LastOrder(ctx context.Context) (*models.Order, error) {
	var order *models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/last", nil, nil, &order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) Order(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder submits a new pending order. The number in the answer is the
// one the server assigned.
func (c *Client) CreateOrder(ctx context.Context, in dtos.CreateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, in, &order); err != nil {
		return nil, err
	}
	c.events.Publish(EventOrderCreated, order.ID)
	return &order, nil
}

// UpdateOrder saves edits. A body whose status is paid settles the order and
// publishes EventOrderSettled instead of EventOrderSaved.
func (c *Client) UpdateOrder(ctx context.Context, id uint, in dtos.UpdateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), nil, in, &order); err != nil {
		return nil, err
	}
	kind := EventOrderSaved
	if in.Status != nil && models.ParseOrderStatus(*in.Status) == models.StatusPaid {
		kind = EventOrderSettled
	}
	c.events.Publish(kind, order.ID)
	return &order, nil
}

func (c *Client) ReopenOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/reopen", id), nil, nil, &order); err != nil {
		return nil, err
	}
	c.events.Publish(EventOrderReopened, order.ID)
	return &order, nil
}

func (c *Client) CompletedOrders(ctx context.Context, q dtos.CompletedQuery) (*dtos.CompletedResponse, error) {
	v := url.Values{}
	if q.StartDate != "" {
		v.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("endDate", q.EndDate)
	}
	if q.PaymentMethod != "" {
		v.Set("paymentMethod", q.PaymentMethod)
	}
	var res dtos.CompletedResponse
	if err := c.do(ctx, http.MethodGet, "/orders/completed", v, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DiscountNoteOrders(ctx context.Context, page, limit int) (*dtos.OrderPage, error) {
	var res dtos.OrderPage
	if err := c.do(ctx, http.MethodGet, "/orders/discount-notes", pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Dashboard(ctx context.Context) (*dtos.DashboardResponse, error) {
	var res dtos.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/orders/dashboard", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
