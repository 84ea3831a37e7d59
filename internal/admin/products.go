package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/logger"
	"github.com/samgau/atelier-storefront/pkg/types"
)

// VariantForm holds one variant row as entered, before parsing.
type VariantForm struct {
	Size  string
	Color string
	Stock string
}

// ProductForm is the admin create/edit form. Price and stock stay
// strings until Validate parses them, so a half-typed value is a
// validation failure instead of a silent zero. An empty ID means
// create; a set ID means update.
type ProductForm struct {
	ID          string
	Name        string
	Description string
	Price       string
	CategoryID  string
	ImageURL    string
	Variants    []VariantForm
}

// Validate checks the form in field order and stops at the first
// failure, mirroring how the panel shows one message at a time.
func (f ProductForm) Validate() error {
	fail := func(msg string) error {
		return pkgerrors.New(pkgerrors.CodeValidation, msg)
	}

	if strings.TrimSpace(f.Name) == "" {
		return fail("Name is required")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || !price.IsPositive() {
		return fail("Price must be greater than 0")
	}
	if strings.TrimSpace(f.Description) == "" {
		return fail("Description is required")
	}
	imageURL := strings.TrimSpace(f.ImageURL)
	if imageURL == "" {
		return fail("Image URL is required")
	}
	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		return fail("Image URL must be a valid URL starting with http:// or https://")
	}
	if parsed, err := url.Parse(imageURL); err != nil || parsed.Host == "" {
		return fail("Image URL must be a valid URL starting with http:// or https://")
	}
	if strings.TrimSpace(f.CategoryID) == "" {
		return fail("Category is required")
	}
	if len(f.Variants) == 0 {
		return fail("At least one variant is required")
	}
	for i, variant := range f.Variants {
		if strings.TrimSpace(variant.Size) == "" {
			return fail(fmt.Sprintf("Variant #%d: size is required", i+1))
		}
		if strings.TrimSpace(variant.Color) == "" {
			return fail(fmt.Sprintf("Variant #%d: color is required", i+1))
		}
		stockRaw := strings.TrimSpace(variant.Stock)
		if stockRaw == "" {
			return fail(fmt.Sprintf("Variant #%d: stock is required", i+1))
		}
		stock, err := strconv.Atoi(stockRaw)
		if err != nil {
			return fail(fmt.Sprintf("Variant #%d: stock is required", i+1))
		}
		if stock < 0 {
			return fail(fmt.Sprintf("Variant #%d: stock cannot be negative", i+1))
		}
	}
	return nil
}

// Payload converts a validated form into the wire input. Call Validate
// first; Payload assumes the numeric fields parse.
func (f ProductForm) Payload() types.ProductInput {
	price, _ := decimal.NewFromString(strings.TrimSpace(f.Price))
	variants := make([]types.Variant, 0, len(f.Variants))
	for _, variant := range f.Variants {
		stock, _ := strconv.Atoi(strings.TrimSpace(variant.Stock))
		variants = append(variants, types.Variant{
			Size:  strings.TrimSpace(variant.Size),
			Color: strings.TrimSpace(variant.Color),
			Stock: stock,
		})
	}
	return types.ProductInput{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		ImageURL:    strings.TrimSpace(f.ImageURL),
		Price:       types.NewMoney(price),
		CategoryID:  strings.TrimSpace(f.CategoryID),
		Variants:    variants,
	}
}

type productTransport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Products is the admin product panel backend: list, save, delete.
type Products struct {
	rt        productTransport
	logg      *logger.Logger
	pageLimit int
}

type ProductsParams struct {
	Transport productTransport
	Logger    *logger.Logger
	PageLimit int
}

func NewProducts(params ProductsParams) (*Products, error) {
	if params.Transport == nil {
		return nil, fmt.Errorf("transport required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.PageLimit <= 0 {
		params.PageLimit = 100
	}
	return &Products{
		rt:        params.Transport,
		logg:      params.Logger,
		pageLimit: params.PageLimit,
	}, nil
}

func (p *Products) List(ctx context.Context) ([]types.Product, error) {
	values := url.Values{}
	values.Set("skip", "0")
	values.Set("limit", strconv.Itoa(p.pageLimit))

	var out []types.Product
	if err := p.rt.Get(ctx, "/products", values, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Save validates the form and creates or updates depending on the ID.
// Nothing reaches the wire when validation fails.
func (p *Products) Save(ctx context.Context, form ProductForm) (*types.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	saveCtx := p.logg.WithComponent(ctx, "admin.products")
	var out types.Product
	if form.ID == "" {
		if err := p.rt.Post(saveCtx, "/products/", form.Payload(), &out); err != nil {
			return nil, err
		}
		p.logg.Info(p.logg.WithField(saveCtx, "product_id", out.ID), "product created")
		return &out, nil
	}

	if err := p.rt.Patch(saveCtx, "/products/"+form.ID, form.Payload(), &out); err != nil {
		return nil, err
	}
	p.logg.Info(p.logg.WithField(saveCtx, "product_id", out.ID), "product updated")
	return &out, nil
}

func (p *Products) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	deleteCtx := p.logg.WithComponent(ctx, "admin.products")
	if err := p.rt.Delete(deleteCtx, "/products/"+productID); err != nil {
		return err
	}
	p.logg.Info(p.logg.WithField(deleteCtx, "product_id", productID), "product deleted")
	return nil
}

// ListFilter narrows an already fetched product page in the admin
// table. Bounds that do not parse are skipped rather than rejected.
type ListFilter struct {
	Query      string
	CategoryID string
	MinPrice   string
	MaxPrice   string
}

func FilterProducts(products []types.Product, filter ListFilter) []types.Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	minPrice, minOK := parsePrice(filter.MinPrice)
	maxPrice, maxOK := parsePrice(filter.MaxPrice)

	out := make([]types.Product, 0, len(products))
	for _, product := range products {
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		if filter.CategoryID != "" && product.CategoryID != filter.CategoryID {
			continue
		}
		if minOK && product.Price.LessThan(minPrice) {
			continue
		}
		if maxOK && product.Price.GreaterThan(maxPrice) {
			continue
		}
		out = append(out, product)
	}
	return out
}

func parsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}
