package handler

import (
	"time"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

// SignUpRequest represents the request body for account creation
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response for auth endpoints
type AuthResponse struct {
	Status    string `json:"status"`
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// ProductRequest represents the request body for creating or updating a
// product
type ProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url,omitempty"`
	ProductURL string  `json:"product_url,omitempty"`
}

// PricePointResponse represents one price history entry
type PricePointResponse struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// ProductResponse represents the response for product endpoints
type ProductResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Price        float64              `json:"price"`
	ImageURL     string               `json:"image_url,omitempty"`
	ProductURL   string               `json:"product_url,omitempty"`
	DateAdded    time.Time            `json:"date_added"`
	PriceHistory []PricePointResponse `json:"price_history"`
}

func toProductResponse(product *entity.Product) ProductResponse {
	history := make([]PricePointResponse, 0, len(product.PriceHistory))
	for _, point := range product.PriceHistory {
		history = append(history, PricePointResponse{Date: point.Date, Price: point.Price})
	}

	return ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		ImageURL:     product.ImageURL,
		ProductURL:   product.ProductURL,
		DateAdded:    product.DateAdded,
		PriceHistory: history,
	}
}

// AddFundsRequest represents the request body for adding funds
type AddFundsRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ProductID   string  `json:"product_id"`
}

// AllocateFundsRequest represents the request body for the allocation alias
type AllocateFundsRequest struct {
	Amount    float64 `json:"amount"`
	ProductID string  `json:"product_id"`
}

// TransactionResponse represents a wallet ledger entry
type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	ProductID   string    `json:"product_id,omitempty"`
}

func toTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		Kind:        string(tx.Kind),
		ProductID:   tx.ProductID,
	}
}

// FundsResponse represents the response for funding endpoints. Message is
// the user-facing success notification.
type FundsResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Message     string              `json:"message"`
}

// WalletResponse represents the response for the wallet endpoint
type WalletResponse struct {
	Balance      float64               `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// CreatePlanRequest represents the request body for creating a savings plan
type CreatePlanRequest struct {
	ProductID string `json:"product_id"`
	Frequency string `json:"frequency"`
	Months    int    `json:"months"`
}

// UpdatePlanRequest represents the request body for replacing a plan's
// mutable fields
type UpdatePlanRequest struct {
	Frequency          string    `json:"frequency"`
	ContributionAmount float64   `json:"contribution_amount"`
	TargetDate         time.Time `json:"target_date"`
}

// PlanResponse represents the response for savings plan endpoints. Allocated
// is derived from the wallet ledger.
type PlanResponse struct {
	ProductID          string    `json:"product_id"`
	Frequency          string    `json:"frequency"`
	ContributionAmount float64   `json:"contribution_amount"`
	TargetDate         time.Time `json:"target_date"`
	Allocated          float64   `json:"allocated"`
}

func toPlanResponse(plan *entity.SavingsPlan, allocated float64) PlanResponse {
	return PlanResponse{
		ProductID:          plan.ProductID,
		Frequency:          string(plan.Frequency),
		ContributionAmount: plan.ContributionAmount,
		TargetDate:         plan.TargetDate,
		Allocated:          allocated,
	}
}
