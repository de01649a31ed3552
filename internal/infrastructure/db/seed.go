package db

import (
	"context"
	"fmt"
	"time"

	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/pricepal/pricepal-server/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// DemoEmail is the login email of the seeded demo account.
const DemoEmail = "user@example.com"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedDemoData populates an empty store with the demo dataset: one account,
// three wishlist products with price history, the wallet ledger and the
// matching savings plans. A store that already has the demo account is left
// untouched.
func SeedDemoData(
	ctx context.Context,
	users repository.UserRepository,
	products repository.ProductRepository,
	wallet repository.WalletRepository,
	plans repository.PlanRepository,
	demoPassword string,
) error {
	existing, err := users.FindByEmail(ctx, DemoEmail)
	if err != nil {
		return fmt.Errorf("failed to check for demo user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	if err := users.Create(ctx, &entity.User{
		ID:           "user123",
		Email:        DemoEmail,
		Name:         "Demo User",
		PhotoURL:     "https://api.dicebear.com/7.x/avataaars/svg?seed=John",
		PasswordHash: string(hashed),
		CreatedAt:    date(2023, 12, 1),
	}); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	demoProducts := []*entity.Product{
		{
			ID:         "prod1",
			Name:       "Samsung S24",
			Price:      55699,
			ImageURL:   "https://placehold.co/300x200?text=Samsung+S24",
			ProductURL: "https://www.amazon.in/Samsung-Galaxy-S24-Cobalt-Storage/dp/B0CRHJXLNS/",
			DateAdded:  date(2023, 12, 15),
			PriceHistory: []entity.PricePoint{
				{Date: date(2023, 12, 15), Price: 57899},
				{Date: date(2024, 1, 15), Price: 56799},
				{Date: date(2024, 2, 15), Price: 55699},
			},
		},
		{
			ID:         "prod2",
			Name:       "MacBook Air M2",
			Price:      89990,
			ImageURL:   "https://placehold.co/300x200?text=MacBook+Air+M2",
			ProductURL: "https://www.amazon.in/Apple-MacBook-13-inch-8%E2%80%91core-storage/dp/B0CB5LD4TP/",
			DateAdded:  date(2024, 1, 10),
			PriceHistory: []entity.PricePoint{
				{Date: date(2024, 1, 10), Price: 94990},
				{Date: date(2024, 2, 10), Price: 92990},
				{Date: date(2024, 3, 10), Price: 89990},
			},
		},
		{
			ID:         "prod3",
			Name:       "Sony WH-1000XM5",
			Price:      24990,
			ImageURL:   "https://placehold.co/300x200?text=Sony+WH-1000XM5",
			ProductURL: "https://www.amazon.in/Sony-WH-1000XM5-Cancelling-Wireless-Headphones/dp/B09XS7JWHH/",
			DateAdded:  date(2024, 2, 5),
			PriceHistory: []entity.PricePoint{
				{Date: date(2024, 2, 5), Price: 26990},
				{Date: date(2024, 3, 5), Price: 24990},
			},
		},
	}

	for _, product := range demoProducts {
		if _, err := products.Store(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.ID, err)
		}
	}

	demoTransactions := []*entity.Transaction{
		{ID: "trans1", Amount: 10000, Date: date(2024, 1, 1), Description: "Initial deposit", Kind: entity.KindDeposit},
		{ID: "trans2", Amount: 15000, Date: date(2024, 2, 1), Description: "Monthly savings", Kind: entity.KindDeposit},
		{ID: "trans3", Amount: 10000, Date: date(2024, 3, 1), Description: "Bonus savings", Kind: entity.KindDeposit},
		{ID: "trans4", Amount: 8000, Date: date(2024, 3, 15), Description: "Allocated to Samsung S24", Kind: entity.KindAllocation, ProductID: "prod1"},
		{ID: "trans5", Amount: 5000, Date: date(2024, 3, 20), Description: "Allocated to Sony WH-1000XM5", Kind: entity.KindAllocation, ProductID: "prod3"},
	}

	for _, tx := range demoTransactions {
		if err := wallet.Append(ctx, tx, tx.BalanceEffect()); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", tx.ID, err)
		}
	}

	demoPlans := []*entity.SavingsPlan{
		{ProductID: "prod1", Frequency: entity.FrequencyMonthly, ContributionAmount: 5000, TargetDate: date(2024, 10, 15)},
		{ProductID: "prod2", Frequency: entity.FrequencyWeekly, ContributionAmount: 1500, TargetDate: date(2025, 2, 10)},
		{ProductID: "prod3", Frequency: entity.FrequencyMonthly, ContributionAmount: 2500, TargetDate: date(2024, 8, 5)},
	}

	for _, plan := range demoPlans {
		if err := plans.Upsert(ctx, plan); err != nil {
			return fmt.Errorf("failed to seed savings plan for %s: %w", plan.ProductID, err)
		}
	}

	return nil
}
