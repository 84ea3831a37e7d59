package types

// RevenueByMonth is one row of /stats/revenue-by-month.
type RevenueByMonth struct {
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	TotalRevenue Money `json:"total_revenue"`
	OrdersCount  int   `json:"orders_count"`
}

// CategorySales is one row of /stats/sales-by-category.
type CategorySales struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	TotalRevenue Money  `json:"total_revenue"`
	TotalItems   int    `json:"total_items"`
}

// TopProduct is one row of /stats/top-products.
type TopProduct struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name,omitempty"`
	TotalQuantity int    `json:"total_quantity"`
	TotalRevenue  Money  `json:"total_revenue"`
}
