package client

import (
	"context"
	"fmt"
	"net/http"

	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
)

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, in dtos.CreateUserInput) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uint, in dtos.UpdateUserInput) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser fails with a 400 APIError for admin accounts.
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}
