package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/pricepal/pricepal-server/internal/domain/repository"
	"github.com/pricepal/pricepal-server/internal/infrastructure/cache"
	"github.com/pricepal/pricepal-server/internal/infrastructure/format"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
)

// LedgerService owns the product, wallet and savings plan collections and
// keeps them consistent with each other. Every operation is a synchronous
// all-or-nothing mutation: validation and existence checks run before
// anything is written.
//
// The amount allocated toward a product is always derived by summing the
// wallet transactions tied to its id; there is no separately mutated
// allocated counter to drift out of sync.
type LedgerService struct {
	products  repository.ProductRepository
	wallet    repository.WalletRepository
	plans     repository.PlanRepository
	summaries *cache.SummaryCache
	logger    logger.Logger
	now       func() time.Time
}

// NewLedgerService creates a new ledger service. The summary cache is
// optional; pass nil to disable caching.
func NewLedgerService(
	products repository.ProductRepository,
	wallet repository.WalletRepository,
	plans repository.PlanRepository,
	summaries *cache.SummaryCache,
	log logger.Logger,
) *LedgerService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &LedgerService{
		products:  products,
		wallet:    wallet,
		plans:     plans,
		summaries: summaries,
		logger:    log,
		now:       time.Now,
	}
}

// AddProduct creates a wishlist product with a generated id and a price
// history seeded with one point at the initial price. The stored record is
// returned so callers can chain follow-up operations on the authoritative id.
func (s *LedgerService) AddProduct(ctx context.Context, name string, price float64, imageURL, productURL string) (*entity.Product, error) {
	now := s.now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       name,
		Price:      price,
		ImageURL:   imageURL,
		ProductURL: productURL,
		DateAdded:  now,
		PriceHistory: []entity.PricePoint{
			{Date: now, Price: price},
		},
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.products.Store(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	return product, nil
}

// Products retrieves all wishlist products.
func (s *LedgerService) Products(ctx context.Context) ([]*entity.Product, error) {
	return s.products.FindAll(ctx)
}

// Product retrieves a product by id.
func (s *LedgerService) Product(ctx context.Context, id string) (*entity.Product, error) {
	return s.products.FindByID(ctx, id)
}

// UpdateProduct applies the mutable fields to an existing product. When the
// price differs from the stored price, one new price-history point dated now
// is appended; an unchanged price appends nothing.
func (s *LedgerService) UpdateProduct(ctx context.Context, id string, upd entity.ProductUpdate) (*entity.Product, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history := stored.PriceHistory
	if upd.Price != stored.Price {
		history = append(history, entity.PricePoint{Date: s.now(), Price: upd.Price})
	}

	updated := &entity.Product{
		ID:           stored.ID,
		Name:         upd.Name,
		Price:        upd.Price,
		ImageURL:     upd.ImageURL,
		ProductURL:   upd.ProductURL,
		DateAdded:    stored.DateAdded,
		PriceHistory: history,
	}

	if _, err := s.products.Store(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	s.invalidateSummary(id)
	return updated, nil
}

// DeleteProduct removes a product and cascades: its savings plan is deleted,
// every wallet transaction tied to it is removed, and if those removed
// entries sum to a positive amount one compensating deposit for that amount
// is appended so allocated value is never silently lost. The cascade leaves
// the wallet balance unchanged.
func (s *LedgerService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete savings plan: %w", err)
	}

	removed, err := s.wallet.RemoveByProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove product transactions: %w", err)
	}

	var returned float64
	for _, tx := range removed {
		returned += tx.Amount
	}

	if returned > 0 {
		compensating := &entity.Transaction{
			ID:          uuid.New().String(),
			Amount:      returned,
			Date:        s.now(),
			Description: "Returned funds from deleted product",
			Kind:        entity.KindDeposit,
		}
		// Net balance effect of the cascade is zero, so the compensating
		// append carries no balance delta.
		if err := s.wallet.Append(ctx, compensating, 0); err != nil {
			return fmt.Errorf("failed to append compensating deposit: %w", err)
		}
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidateSummary(id)
	s.logger.Info("Product deleted", map[string]interface{}{
		"product_id":     id,
		"returned_funds": returned,
	})
	return nil
}

// AddFunds appends a product-tagged deposit and increases the wallet
// balance by the amount. It fails fast, before any mutation, when the
// amount is not a positive finite number or the product does not exist.
// The returned message is the user-facing success notification.
func (s *LedgerService) AddFunds(ctx context.Context, amount float64, description, productID string) (*entity.Transaction, string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, "", &entity.ValidationError{Field: "amount", Reason: "amount must be a positive value"}
	}
	if description == "" {
		return nil, "", &entity.ValidationError{Field: "description", Reason: "description must not be blank"}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, "", err
	}

	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		Amount:      amount,
		Date:        s.now(),
		Description: description,
		Kind:        entity.KindDeposit,
		ProductID:   productID,
	}

	if err := s.wallet.Append(ctx, tx, amount); err != nil {
		return nil, "", fmt.Errorf("failed to append transaction: %w", err)
	}

	s.invalidateSummary(productID)
	s.logger.Info("Funds added", map[string]interface{}{
		"product_id": productID,
		"amount":     amount,
	})

	message := fmt.Sprintf("%s has been added to %s.", format.INR(amount), product.Name)
	return tx, message, nil
}

// AllocateFunds forwards to AddFunds with a default description. Kept for
// interface compatibility with the historical move-balance semantic.
func (s *LedgerService) AllocateFunds(ctx context.Context, amount float64, productID string) (*entity.Transaction, string, error) {
	return s.AddFunds(ctx, amount, "Manual allocation", productID)
}

// Wallet returns the balance and the transaction history in order.
func (s *LedgerService) Wallet(ctx context.Context) (*entity.Wallet, error) {
	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	transactions, err := s.wallet.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &entity.Wallet{Balance: balance, Transactions: transactions}, nil
}

// Allocated derives the amount credited toward a product: the sum of all
// wallet transactions tied to its id, regardless of kind.
func (s *LedgerService) Allocated(ctx context.Context, productID string) (float64, error) {
	transactions, err := s.wallet.FindByProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to list product transactions: %w", err)
	}

	var total float64
	for _, tx := range transactions {
		total += tx.Amount
	}
	return total, nil
}

// CreateSavingsPlan upserts the plan for a product. The target date is
// months calendar months from now; the contribution amount divides the
// product price by the estimated period count for the frequency.
func (s *LedgerService) CreateSavingsPlan(ctx context.Context, productID string, frequency entity.Frequency, months int) (*entity.SavingsPlan, error) {
	if _, err := entity.ParseFrequency(string(frequency)); err != nil {
		return nil, err
	}
	if months <= 0 {
		return nil, &entity.ValidationError{Field: "months", Reason: "months must be a positive value"}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	plan := &entity.SavingsPlan{
		ProductID:          productID,
		Frequency:          frequency,
		ContributionAmount: product.Price / frequency.Periods(months),
		TargetDate:         s.now().AddDate(0, months, 0),
	}

	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to store savings plan: %w", err)
	}

	s.invalidateSummary(productID)
	return plan, nil
}

// UpdateSavingsPlan replaces the mutable fields of the stored plan for a
// product.
func (s *LedgerService) UpdateSavingsPlan(ctx context.Context, productID string, upd entity.PlanUpdate) (*entity.SavingsPlan, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.plans.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to read savings plan: %w", err)
	}
	if existing == nil {
		return nil, &entity.NotFoundError{Resource: "savings plan", ID: productID}
	}

	plan := &entity.SavingsPlan{
		ProductID:          productID,
		Frequency:          upd.Frequency,
		ContributionAmount: upd.ContributionAmount,
		TargetDate:         upd.TargetDate,
	}

	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to store savings plan: %w", err)
	}

	s.invalidateSummary(productID)
	return plan, nil
}

// Plans retrieves all savings plans.
func (s *LedgerService) Plans(ctx context.Context) ([]*entity.SavingsPlan, error) {
	return s.plans.FindAll(ctx)
}

// Progress returns the percentage of the product price covered by the
// derived allocated amount, capped at 100. Missing product or plan yields 0.
func (s *LedgerService) Progress(ctx context.Context, productID string) (int, error) {
	summary, err := s.Summary(ctx, productID)
	if err != nil {
		var notFound *entity.NotFoundError
		if errors.As(err, &notFound) {
			return 0, nil
		}
		return 0, err
	}
	return summary.Progress, nil
}

// Remaining returns how much is still missing toward the product price,
// clamped at zero. A missing product yields 0.
func (s *LedgerService) Remaining(ctx context.Context, productID string) (float64, error) {
	summary, err := s.Summary(ctx, productID)
	if err != nil {
		var notFound *entity.NotFoundError
		if errors.As(err, &notFound) {
			return 0, nil
		}
		return 0, err
	}
	return summary.Remaining, nil
}

// Summary computes the derived savings values for a product. Results are
// cached until the product's ledger state changes or the entry expires.
func (s *LedgerService) Summary(ctx context.Context, productID string) (*entity.ProductSummary, error) {
	if s.summaries != nil {
		if cached := s.summaries.Get(productID); cached != nil {
			return cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	allocated, err := s.Allocated(ctx, productID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to read savings plan: %w", err)
	}

	summary := &entity.ProductSummary{
		ProductID:   productID,
		ProductName: product.Name,
		Price:       product.Price,
		Allocated:   allocated,
		Remaining:   product.Price,
	}

	if plan != nil {
		summary.HasPlan = true
		summary.Frequency = plan.Frequency
		summary.ContributionAmount = plan.ContributionAmount
		summary.TargetDate = plan.TargetDate
		summary.Progress = entity.ProgressPercent(product.Price, allocated)
		summary.Remaining = entity.RemainingAmount(product.Price, allocated)
		summary.RemainingDays = entity.RemainingDays(plan.TargetDate, s.now())
		// Rounding can show 100% a rupee early; ready means fully funded.
		summary.ReadyToPurchase = allocated >= product.Price
	}

	if s.summaries != nil {
		s.summaries.Put(summary)
	}
	return summary, nil
}

func (s *LedgerService) invalidateSummary(productID string) {
	if s.summaries != nil {
		s.summaries.Invalidate(productID)
	}
}
