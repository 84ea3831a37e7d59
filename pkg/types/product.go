package types

import "time"

// Variant is a purchasable size/color combination with its own stock
// count, unique within a product by (size, color).
type Variant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       Money     `json:"price"`
	CategoryID  string    `json:"category_id"`
	ImageURL    string    `json:"image_url"`
	Variants    []Variant `json:"variants"`
	CreatedAt   time.Time `json:"created_at"`
}

// FirstVariant returns the variant shown on a product card; products
// without variants fall back to a nominal M/black placeholder.
func (p Product) FirstVariant() Variant {
	if len(p.Variants) > 0 {
		return p.Variants[0]
	}
	return Variant{Size: "M", Color: "black", Stock: 1}
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductInput is the create/update payload for the admin panel.
type ProductInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Price       Money     `json:"price"`
	CategoryID  string    `json:"category_id"`
	Variants    []Variant `json:"variants"`
}
