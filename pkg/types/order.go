package types

import (
	"time"

	"github.com/samgau/atelier-storefront/pkg/enums"
)

// OrderVariant is the size/color chosen for a line at purchase time.
type OrderVariant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// OrderItem snapshots the product at submission time; later price
// changes do not retroactively affect a placed order.
type OrderItem struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Price     Money        `json:"price"`
	Quantity  int          `json:"quantity"`
	Variant   OrderVariant `json:"variant"`
}

func (i OrderItem) LineTotal() Money {
	return i.Price.MulInt(i.Quantity)
}

type Order struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	CustomerName string            `json:"customer_name,omitempty"`
	Status       enums.OrderStatus `json:"status"`
	Total        Money             `json:"total"`
	Items        []OrderItem       `json:"items"`
	CreatedAt    time.Time         `json:"created_at"`
}

// OrderInput is the checkout submission payload.
type OrderInput struct {
	UserID string      `json:"user_id"`
	Total  Money       `json:"total"`
	Items  []OrderItem `json:"items"`
}
