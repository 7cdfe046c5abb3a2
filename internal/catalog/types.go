// Package catalog defines the product catalog entities and the query
// vocabulary (filters, sorts, pages, connections) that the resolver
// operates on.
package catalog

import "time"

// Category groups products. ProductsCount is populated by the category
// listing query, not stored.
type Category struct {
	ID            int64
	Name          string
	Slug          string
	Description   string
	CreatedAt     time.Time
	ProductsCount int
}

// Product is the primary catalog entity. Category and Reviews are
// populated by batched follow-up queries when requested.
type Product struct {
	ID              int64
	Name            string
	Slug            string
	Description     string
	CategoryID      int64
	Category        *Category
	Price           float64
	DiscountPercent int
	StockQuantity   int
	SKU             string
	IsFeatured      bool
	IsActive        bool
	Rating          float64
	ReviewCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PublishedDate   *time.Time
	Reviews         []Review
}

// DiscountedPrice applies the product's discount percentage to its price.
func (p Product) DiscountedPrice() float64 {
	if p.DiscountPercent == 0 {
		return p.Price
	}
	return p.Price * (1 - float64(p.DiscountPercent)/100)
}

// Review is a customer review attached to a product.
type Review struct {
	ID                 int64
	ProductID          int64
	User               string
	Rating             int
	Title              string
	Comment            string
	IsVerifiedPurchase bool
	HelpfulCount       int
	CreatedAt          time.Time
}
