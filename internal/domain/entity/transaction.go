package entity

import (
	"math"
	"time"
)

// TransactionKind distinguishes wallet ledger entries.
type TransactionKind string

const (
	// KindDeposit increases the wallet balance.
	KindDeposit TransactionKind = "deposit"
	// KindAllocation records funds earmarked for a product. Allocation
	// entries are historical records with no balance effect.
	KindAllocation TransactionKind = "allocation"
)

// Transaction is an immutable wallet ledger entry. Entries are only ever
// appended, or removed as part of a product-delete cascade.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Kind        TransactionKind `json:"kind"`
	ProductID   string          `json:"product_id,omitempty"`
}

// BalanceEffect returns the change this entry applies to the wallet balance.
func (t *Transaction) BalanceEffect() float64 {
	if t.Kind == KindDeposit {
		return t.Amount
	}
	return 0
}

// Validate ensures the transaction meets all requirements.
func (t *Transaction) Validate() error {
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) || t.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "amount must be a positive value"}
	}
	if t.Kind != KindDeposit && t.Kind != KindAllocation {
		return &ValidationError{Field: "kind", Reason: "kind must be deposit or allocation"}
	}
	return nil
}
