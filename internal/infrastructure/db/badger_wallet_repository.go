package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

const (
	transactionPrefix = "tx:"
	balanceKey        = "wallet:balance"
)

// BadgerWalletRepository implements the wallet repository interface using
// BadgerDB. The balance lives under its own key and is adjusted in the same
// store transaction as each ledger append, so reads never scan the ledger.
type BadgerWalletRepository struct {
	db *badger.DB
}

// NewBadgerWalletRepository creates a new BadgerDB wallet repository
func NewBadgerWalletRepository(db *badger.DB) *BadgerWalletRepository {
	return &BadgerWalletRepository{db: db}
}

// Append saves a transaction and applies balanceDelta atomically
func (r *BadgerWalletRepository) Append(ctx context.Context, tx *entity.Transaction, balanceDelta float64) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	err = r.update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(transactionPrefix+tx.ID), data); err != nil {
			return err
		}
		if balanceDelta == 0 {
			return nil
		}

		balance, err := readBalance(txn)
		if err != nil {
			return err
		}
		return writeBalance(txn, balance+balanceDelta)
	})
	if err != nil {
		return fmt.Errorf("failed to store transaction: %w", err)
	}

	return nil
}

// update runs fn in a read-write transaction, retrying when concurrent
// appends race on the balance key.
func (r *BadgerWalletRepository) update(fn func(txn *badger.Txn) error) error {
	for {
		err := r.db.Update(fn)
		if err != badger.ErrConflict {
			return err
		}
	}
}

// RemoveByProduct deletes every transaction tied to the product id and
// returns the removed entries in chronological order
func (r *BadgerWalletRepository) RemoveByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error) {
	var removed []*entity.Transaction

	err := r.update(func(txn *badger.Txn) error {
		removed = removed[:0]

		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(transactionPrefix)
		it := txn.NewIterator(opts)

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			var tx entity.Transaction
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &tx)
			})
			if err != nil {
				it.Close()
				return err
			}
			if tx.ProductID == productID {
				removed = append(removed, &tx)
				keys = append(keys, it.Item().KeyCopy(nil))
			}
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove product transactions: %w", err)
	}

	sortByDate(removed)
	return removed, nil
}

// FindAll retrieves all transactions in chronological order
func (r *BadgerWalletRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := r.list(func(*entity.Transaction) bool { return true })
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// FindByProduct retrieves the transactions tied to a product id in
// chronological order
func (r *BadgerWalletRepository) FindByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error) {
	transactions, err := r.list(func(tx *entity.Transaction) bool { return tx.ProductID == productID })
	if err != nil {
		return nil, fmt.Errorf("failed to list product transactions: %w", err)
	}
	return transactions, nil
}

// Balance returns the current wallet balance
func (r *BadgerWalletRepository) Balance(ctx context.Context) (float64, error) {
	var balance float64

	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		balance, err = readBalance(txn)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}

	return balance, nil
}

func (r *BadgerWalletRepository) list(keep func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(transactionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var tx entity.Transaction
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &tx)
			})
			if err != nil {
				return err
			}
			if keep(&tx) {
				transactions = append(transactions, &tx)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByDate(transactions)
	return transactions, nil
}

func sortByDate(transactions []*entity.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
}

func readBalance(txn *badger.Txn) (float64, error) {
	item, err := txn.Get([]byte(balanceKey))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var balance float64
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &balance)
	})
	return balance, err
}

func writeBalance(txn *badger.Txn, balance float64) error {
	data, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return txn.Set([]byte(balanceKey), data)
}
