package client

import (
	"context"
	"net/http"
	"strings"

	"nsdrink-pos/dtos"
)

// Login exchanges credentials for a token and keeps the token for later
// calls. Blank credentials fail with ErrMissingCredentials without a request.
func (c *Client) Login(ctx context.Context, phone, password string) (*dtos.AuthResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var res dtos.AuthResponse
	in := dtos.LoginInput{Phone: phone, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, in, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.Token)
	return &res, nil
}

// Logout forgets the token. The server keeps no session state.
func (c *Client) Logout() {
	c.SetToken("")
}
