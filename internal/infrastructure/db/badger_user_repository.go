package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

const (
	userPrefix      = "user:"
	userEmailPrefix = "user_email:"
)

// BadgerUserRepository implements the user repository interface using
// BadgerDB. A secondary email key maps to the user id for login lookups.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerDB user repository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create saves a new user and its email index entry
func (r *BadgerUserRepository) Create(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(userPrefix+user.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(userEmailPrefix+user.Email), []byte(user.ID))
	})
	if err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}

	return nil
}

// FindByEmail retrieves a user by email, or nil if none exists
func (r *BadgerUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var id string

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailPrefix + email))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}

	return r.FindByID(ctx, id)
}

// FindByID retrieves a user by id
func (r *BadgerUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, &entity.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return &user, nil
}
