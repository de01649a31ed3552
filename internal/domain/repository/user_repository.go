package repository

import (
	"context"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

// UserRepository defines the interface for account storage.
type UserRepository interface {
	// Create saves a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or nil if none exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
