package repository

import (
	"context"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

// PlanRepository defines the interface for savings plan storage. Plans are
// keyed by product id; at most one plan exists per product.
type PlanRepository interface {
	// Upsert stores a plan, replacing any existing plan for the product.
	Upsert(ctx context.Context, plan *entity.SavingsPlan) error

	// FindByProduct retrieves the plan for a product, or nil if none exists.
	FindByProduct(ctx context.Context, productID string) (*entity.SavingsPlan, error)

	// FindAll retrieves all plans.
	FindAll(ctx context.Context) ([]*entity.SavingsPlan, error)

	// Delete removes the plan for a product. Deleting an absent plan is not
	// an error.
	Delete(ctx context.Context, productID string) error
}
