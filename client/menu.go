package client

import (
	"context"
	"fmt"
	"net/http"

	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
)

func (c *Client) Menu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := c.do(ctx, http.MethodGet, "/menu", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, in dtos.MenuInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPost, "/menu", nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id uint, in dtos.MenuInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/menu/%d", id), nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", id), nil, nil, nil)
}
