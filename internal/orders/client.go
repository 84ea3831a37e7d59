package orders

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samgau/atelier-storefront/pkg/enums"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/types"
)

type transport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
}

// ListParams page through an order listing, optionally narrowed by
// status server-side.
type ListParams struct {
	Status enums.OrderStatus
	Skip   int
	Limit  int
}

func (p ListParams) values() url.Values {
	values := url.Values{}
	values.Set("skip", strconv.Itoa(p.Skip))
	limit := p.Limit
	if limit <= 0 {
		limit = 100
	}
	values.Set("limit", strconv.Itoa(limit))
	if p.Status != "" {
		values.Set("status_filter", p.Status.String())
	}
	return values
}

// Client wraps the /orders endpoints.
type Client struct {
	rt transport
}

func NewClient(rt transport) (*Client, error) {
	if rt == nil {
		return nil, fmt.Errorf("transport required")
	}
	return &Client{rt: rt}, nil
}

// Place submits a checkout payload and returns the created order.
func (c *Client) Place(ctx context.Context, input types.OrderInput) (*types.Order, error) {
	var order types.Order
	if err := c.rt.Post(ctx, "/orders/", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// My lists the current user's orders.
func (c *Client) My(ctx context.Context, params ListParams) ([]types.Order, error) {
	var out []types.Order
	if err := c.rt.Get(ctx, "/orders/my", params.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all orders visible to the caller; for an admin session
// that is the whole book.
func (c *Client) List(ctx context.Context, params ListParams) ([]types.Order, error) {
	var out []types.Order
	if err := c.rt.Get(ctx, "/orders/", params.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, orderID string) (*types.Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	var order types.Order
	if err := c.rt.Get(ctx, "/orders/"+orderID, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus transitions an order to the given status (admin only).
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*types.Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}
	body := map[string]string{"status": status.String()}
	var order types.Order
	if err := c.rt.Patch(ctx, "/orders/"+orderID+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel cancels the order and restores its reserved stock server-side.
func (c *Client) Cancel(ctx context.Context, orderID string) (*types.Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	var order types.Order
	if err := c.rt.Post(ctx, "/orders/"+orderID+"/cancel", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
