package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/logger"
	"github.com/samgau/atelier-storefront/pkg/types"
	"go.uber.org/multierr"
)

// Filter is the shop's filter set. Category, size, color and price
// bounds travel as query parameters; Query narrows client-side over
// the fetched page only (it never widens beyond the page).
type Filter struct {
	CategoryID string
	Size       string
	Color      string
	MinPrice   string
	MaxPrice   string
	Query      string
}

// Validate checks the price bounds are numeric before any request is
// dispatched. Failures are field-level and local.
func (f Filter) Validate() error {
	if v := strings.TrimSpace(f.MinPrice); v != "" {
		if _, err := decimal.NewFromString(v); err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "Min price must be a number").
				WithDetails(map[string]string{"min_price": "Min price must be a number"})
		}
	}
	if v := strings.TrimSpace(f.MaxPrice); v != "" {
		if _, err := decimal.NewFromString(v); err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "Max price must be a number").
				WithDetails(map[string]string{"max_price": "Max price must be a number"})
		}
	}
	return nil
}

func (f Filter) values() url.Values {
	values := url.Values{}
	if f.CategoryID != "" {
		values.Set("category_id", f.CategoryID)
	}
	if f.Size != "" {
		values.Set("size", f.Size)
	}
	if f.Color != "" {
		values.Set("color", f.Color)
	}
	if v := strings.TrimSpace(f.MinPrice); v != "" {
		values.Set("min_price", v)
	}
	if v := strings.TrimSpace(f.MaxPrice); v != "" {
		values.Set("max_price", v)
	}
	return values
}

// FilterByName narrows products to those whose name contains the
// query, case-insensitive. An empty query returns the input unchanged;
// any query yields a subset of the input.
func FilterByName(products []types.Product, query string) []types.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]types.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// View is one consistent catalog snapshot.
type View struct {
	Products   []types.Product
	Categories []types.Category
	Filter     Filter
}

// Visible applies the free-text narrowing to the fetched page.
func (v View) Visible() []types.Product {
	return FilterByName(v.Products, v.Filter.Query)
}

type productsFetcher interface {
	Products(ctx context.Context, filter Filter) ([]types.Product, error)
}

type categoriesFetcher interface {
	Categories(ctx context.Context) ([]types.Category, error)
}

// QueryParams wires the catalog query to its fetchers.
type QueryParams struct {
	Products   productsFetcher
	Categories categoriesFetcher
	Logger     *logger.Logger
}

// Query fetches products and categories concurrently and keeps the
// latest committed view. Loads are numbered; a load that finishes
// after a newer one started returns to its caller but never commits,
// so navigating away mid-fetch cannot clobber fresher state.
type Query struct {
	mu   sync.Mutex
	gen  uint64
	view View

	products   productsFetcher
	categories categoriesFetcher
	logg       *logger.Logger
}

func NewQuery(params QueryParams) (*Query, error) {
	if params.Products == nil {
		return nil, fmt.Errorf("products fetcher required")
	}
	if params.Categories == nil {
		return nil, fmt.Errorf("categories fetcher required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Query{
		products:   params.Products,
		categories: params.Categories,
		logg:       params.Logger,
	}, nil
}

// Load validates the filter, fetches both halves concurrently, joins
// them, and commits the view unless a newer load has started since.
func (q *Query) Load(ctx context.Context, filter Filter) (View, error) {
	if err := filter.Validate(); err != nil {
		return View{}, err
	}

	q.mu.Lock()
	q.gen++
	gen := q.gen
	q.mu.Unlock()

	loadCtx := q.logg.WithComponent(ctx, "catalog")

	var (
		wg         sync.WaitGroup
		products   []types.Product
		categories []types.Category
		perr, cerr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		products, perr = q.products.Products(loadCtx, filter)
	}()
	go func() {
		defer wg.Done()
		categories, cerr = q.categories.Categories(loadCtx)
	}()
	wg.Wait()

	if err := multierr.Append(perr, cerr); err != nil {
		return View{}, err
	}

	view := View{Products: products, Categories: categories, Filter: filter}

	q.mu.Lock()
	defer q.mu.Unlock()
	if gen != q.gen {
		q.logg.Debug(loadCtx, "discarding stale catalog response")
		return view, nil
	}
	q.view = view
	return view, nil
}

// Reset restores empty filters and re-queries.
func (q *Query) Reset(ctx context.Context) (View, error) {
	return q.Load(ctx, Filter{})
}

// View returns the last committed snapshot.
func (q *Query) View() View {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.view
}
