package stats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/samgau/atelier-storefront/pkg/logger"
	"github.com/samgau/atelier-storefront/pkg/types"
	"go.uber.org/multierr"
)

type transport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

type Params struct {
	Transport transport
	Logger    *logger.Logger
	TopLimit  int
}

// Client reads the admin stats endpoints.
type Client struct {
	rt       transport
	logg     *logger.Logger
	topLimit int
}

func New(params Params) (*Client, error) {
	if params.Transport == nil {
		return nil, fmt.Errorf("transport required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.TopLimit <= 0 {
		params.TopLimit = 10
	}
	return &Client{
		rt:       params.Transport,
		logg:     params.Logger,
		topLimit: params.TopLimit,
	}, nil
}

func (c *Client) RevenueByMonth(ctx context.Context) ([]types.RevenueByMonth, error) {
	var out []types.RevenueByMonth
	if err := c.rt.Get(ctx, "/stats/revenue-by-month", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SalesByCategory(ctx context.Context) ([]types.CategorySales, error) {
	var out []types.CategorySales
	if err := c.rt.Get(ctx, "/stats/sales-by-category", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopProducts fetches the best sellers; limit <= 0 falls back to the
// configured default.
func (c *Client) TopProducts(ctx context.Context, limit int) ([]types.TopProduct, error) {
	if limit <= 0 {
		limit = c.topLimit
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))

	var out []types.TopProduct
	if err := c.rt.Get(ctx, "/stats/top-products", values, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Overview is the dashboard's one-shot dataset.
type Overview struct {
	ByCategory  []types.CategorySales
	TopProducts []types.TopProduct
}

// Overview fetches both dashboard halves concurrently and joins the
// failures, so one broken chart does not hide the other's error.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	overviewCtx := c.logg.WithComponent(ctx, "stats")

	var (
		wg         sync.WaitGroup
		byCategory []types.CategorySales
		top        []types.TopProduct
		cerr, terr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		byCategory, cerr = c.SalesByCategory(overviewCtx)
	}()
	go func() {
		defer wg.Done()
		top, terr = c.TopProducts(overviewCtx, 0)
	}()
	wg.Wait()

	if err := multierr.Append(cerr, terr); err != nil {
		return Overview{}, err
	}
	return Overview{ByCategory: byCategory, TopProducts: top}, nil
}

// Summary aggregates the monthly rows into dashboard headline numbers.
type Summary struct {
	TotalRevenue types.Money
	OrdersCount  int
}

func Summarize(rows []types.RevenueByMonth) Summary {
	var summary Summary
	for _, row := range rows {
		summary.TotalRevenue = summary.TotalRevenue.Add(row.TotalRevenue)
		summary.OrdersCount += row.OrdersCount
	}
	return summary
}
