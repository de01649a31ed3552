package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

const planPrefix = "plan:"

// BadgerPlanRepository implements the savings plan repository interface
// using BadgerDB. Plans are keyed by product id, which gives the
// one-plan-per-product invariant for free.
type BadgerPlanRepository struct {
	db *badger.DB
}

// NewBadgerPlanRepository creates a new BadgerDB plan repository
func NewBadgerPlanRepository(db *badger.DB) *BadgerPlanRepository {
	return &BadgerPlanRepository{db: db}
}

// Upsert stores a plan, replacing any existing plan for the product
func (r *BadgerPlanRepository) Upsert(ctx context.Context, plan *entity.SavingsPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal savings plan: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(planPrefix+plan.ProductID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store savings plan: %w", err)
	}

	return nil
}

// FindByProduct retrieves the plan for a product, or nil if none exists
func (r *BadgerPlanRepository) FindByProduct(ctx context.Context, productID string) (*entity.SavingsPlan, error) {
	var plan entity.SavingsPlan

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(planPrefix + productID))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &plan)
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve savings plan: %w", err)
	}

	return &plan, nil
}

// FindAll retrieves all plans
func (r *BadgerPlanRepository) FindAll(ctx context.Context) ([]*entity.SavingsPlan, error) {
	var plans []*entity.SavingsPlan

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(planPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var plan entity.SavingsPlan
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &plan)
			})
			if err != nil {
				return err
			}
			plans = append(plans, &plan)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list savings plans: %w", err)
	}

	return plans, nil
}

// Delete removes the plan for a product. Deleting an absent plan is not an
// error.
func (r *BadgerPlanRepository) Delete(ctx context.Context, productID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(planPrefix + productID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete savings plan: %w", err)
	}
	return nil
}
