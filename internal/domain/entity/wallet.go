package entity

import "time"

// Wallet is the session-wide aggregate of balance and transaction history.
type Wallet struct {
	Balance      float64        `json:"balance"`
	Transactions []*Transaction `json:"transactions"`
}

// ProductSummary bundles the derived savings values for one product.
type ProductSummary struct {
	ProductID          string    `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Price              float64   `json:"price"`
	Allocated          float64   `json:"allocated"`
	Progress           int       `json:"progress"`
	Remaining          float64   `json:"remaining"`
	HasPlan            bool      `json:"has_plan"`
	Frequency          Frequency `json:"frequency,omitempty"`
	ContributionAmount float64   `json:"contribution_amount,omitempty"`
	TargetDate         time.Time `json:"target_date"`
	RemainingDays      int       `json:"remaining_days"`
	ReadyToPurchase    bool      `json:"ready_to_purchase"`
}
