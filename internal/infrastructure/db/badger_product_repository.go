package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

const productPrefix = "product:"

// BadgerProductRepository implements the product repository interface using BadgerDB
type BadgerProductRepository struct {
	db *badger.DB
}

// NewBadgerProductRepository creates a new BadgerDB product repository
func NewBadgerProductRepository(db *badger.DB) *BadgerProductRepository {
	return &BadgerProductRepository{db: db}
}

// Store saves a product and returns its ID
func (r *BadgerProductRepository) Store(ctx context.Context, product *entity.Product) (string, error) {
	data, err := json.Marshal(product)
	if err != nil {
		return "", fmt.Errorf("failed to marshal product: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(productPrefix+product.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("failed to store product: %w", err)
	}

	return product.ID, nil
}

// FindByID retrieves a product by its unique identifier
func (r *BadgerProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(productPrefix + id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &product)
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, &entity.NotFoundError{Resource: "product", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	return &product, nil
}

// FindAll retrieves all products, oldest first
func (r *BadgerProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var product entity.Product
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &product)
			})
			if err != nil {
				return err
			}
			products = append(products, &product)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].DateAdded.Before(products[j].DateAdded)
	})
	return products, nil
}

// Delete removes a product. Deleting an unknown id is not an error.
func (r *BadgerProductRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(productPrefix + id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
