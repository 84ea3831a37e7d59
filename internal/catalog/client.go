package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/samgau/atelier-storefront/pkg/types"
)

type transport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// Client wraps the /products and /categories read endpoints.
type Client struct {
	rt        transport
	pageLimit int
}

func NewClient(rt transport, pageLimit int) (*Client, error) {
	if rt == nil {
		return nil, fmt.Errorf("transport required")
	}
	if pageLimit <= 0 {
		pageLimit = 100
	}
	return &Client{rt: rt, pageLimit: pageLimit}, nil
}

// Products fetches the page matching the server-side filters. The
// free-text query is not sent; it narrows client-side.
func (c *Client) Products(ctx context.Context, filter Filter) ([]types.Product, error) {
	values := filter.values()
	values.Set("skip", "0")
	values.Set("limit", strconv.Itoa(c.pageLimit))

	var out []types.Product
	if err := c.rt.Get(ctx, "/products", values, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]types.Category, error) {
	values := url.Values{}
	values.Set("skip", "0")
	values.Set("limit", strconv.Itoa(c.pageLimit))

	var out []types.Category
	if err := c.rt.Get(ctx, "/categories", values, &out); err != nil {
		return nil, err
	}
	return out, nil
}
