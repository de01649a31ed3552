package repository

import (
	"context"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

// ProductRepository defines the interface for wishlist product storage.
type ProductRepository interface {
	// Store saves a product and returns its ID.
	Store(ctx context.Context, product *entity.Product) (string, error)

	// FindByID retrieves a product by its unique identifier.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindAll retrieves all products in insertion order.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Delete removes a product. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
