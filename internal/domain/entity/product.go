package entity

import (
	"math"
	"time"
)

// PricePoint is a single observation in a product's price history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Product represents a wishlist item the user is saving toward.
type Product struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	ImageURL     string       `json:"image_url,omitempty"`
	ProductURL   string       `json:"product_url,omitempty"`
	DateAdded    time.Time    `json:"date_added"`
	PriceHistory []PricePoint `json:"price_history"`
}

// ProductUpdate carries the mutable fields of a product. Price history is
// managed by the ledger service, never set directly by callers.
type ProductUpdate struct {
	Name       string
	Price      float64
	ImageURL   string
	ProductURL string
}

// Validate ensures the product meets all requirements.
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "name must not be blank"}
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "price must be a positive value"}
	}
	return nil
}

// Validate ensures the update meets the same requirements as a new product.
func (u ProductUpdate) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Reason: "name must not be blank"}
	}
	if math.IsNaN(u.Price) || math.IsInf(u.Price, 0) || u.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "price must be a positive value"}
	}
	return nil
}
