package repository

import (
	"context"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

// WalletRepository defines the interface for the wallet ledger. The balance
// is tracked as its own stored aggregate so reads never scan the ledger; it
// is adjusted in the same store transaction as each append.
type WalletRepository interface {
	// Append saves a transaction and applies balanceDelta to the wallet
	// balance atomically. A compensating entry appended during a
	// product-delete cascade passes a zero delta.
	Append(ctx context.Context, tx *entity.Transaction, balanceDelta float64) error

	// RemoveByProduct deletes every transaction tied to the product id and
	// returns the removed entries.
	RemoveByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error)

	// FindAll retrieves all transactions in chronological order.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByProduct retrieves the transactions tied to a product id in
	// chronological order.
	FindByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error)

	// Balance returns the current wallet balance.
	Balance(ctx context.Context) (float64, error)
}
