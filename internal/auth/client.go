package auth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/samgau/atelier-storefront/pkg/types"
	"github.com/samgau/atelier-storefront/pkg/validate"
)

type transport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Credentials is the login payload. Validation mirrors the server's
// rules for fast local feedback only.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the account creation payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// Client wraps the /auth endpoints.
type Client struct {
	rt transport
}

func NewClient(rt transport) (*Client, error) {
	if rt == nil {
		return nil, fmt.Errorf("transport required")
	}
	return &Client{rt: rt}, nil
}

func (c *Client) Me(ctx context.Context) (*types.Identity, error) {
	var identity types.Identity
	if err := c.rt.Get(ctx, "/auth/me", nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) error {
	if err := validate.Struct(creds); err != nil {
		return err
	}
	return c.rt.Post(ctx, "/auth/login", creds, nil)
}

func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return c.rt.Post(ctx, "/auth/register", input, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.rt.Post(ctx, "/auth/logout", nil, nil)
}

// RefreshToken asks the server to rotate the session cookie. The
// credential itself stays opaque to the client.
func (c *Client) RefreshToken(ctx context.Context) error {
	return c.rt.Post(ctx, "/auth/refresh", nil, nil)
}
