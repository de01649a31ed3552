package internal

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/pricepal/pricepal-server/internal/application/service"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/pricepal/pricepal-server/internal/infrastructure/cache"
	"github.com/pricepal/pricepal-server/internal/infrastructure/db"
)

func TestPerformance(t *testing.T) {
	// Skip in short mode or CI
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	// Setup test database
	dbPath, err := os.MkdirTemp("", "badger-perf-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(dbPath)

	badgerOpts := badger.DefaultOptions(dbPath).WithLogger(nil)
	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer badgerDB.Close()

	// Initialize repositories and the ledger service
	productRepo := db.NewBadgerProductRepository(badgerDB)
	walletRepo := db.NewBadgerWalletRepository(badgerDB)
	planRepo := db.NewBadgerPlanRepository(badgerDB)
	ledger := service.NewLedgerService(productRepo, walletRepo, planRepo, cache.NewSummaryCache(), nil)

	// Performance test configuration
	numDeposits := 100
	concurrency := 10

	t.Log("Preloading products...")
	productIDs := preloadProducts(t, ledger, concurrency)

	var depositedMu sync.Mutex
	var deposited float64

	// Test deposit throughput with concurrent writers racing on the balance
	t.Run("Deposit Throughput", func(t *testing.T) {
		startTime := time.Now()

		wg := sync.WaitGroup{}
		wg.Add(concurrency)

		depositsPerWorker := numDeposits / concurrency

		for i := 0; i < concurrency; i++ {
			go func(workerID int) {
				defer wg.Done()

				ctx := context.Background()
				for j := 0; j < depositsPerWorker; j++ {
					amount := 100.0 + float64(rand.Intn(10000))/100.0
					desc := fmt.Sprintf("Perf deposit %d-%d", workerID, j)
					productID := productIDs[rand.Intn(len(productIDs))]

					_, _, err := ledger.AddFunds(ctx, amount, desc, productID)
					if err != nil {
						t.Logf("Error adding funds: %v", err)
						continue
					}

					depositedMu.Lock()
					deposited += amount
					depositedMu.Unlock()
				}
			}(i)
		}

		wg.Wait()
		duration := time.Since(startTime)

		throughput := float64(numDeposits) / duration.Seconds()
		t.Logf("Deposits: %d in %v (%.2f tx/sec)", numDeposits, duration, throughput)
	})

	// The balance must equal the sum of every successful deposit even though
	// the writers raced on the balance key
	t.Run("Ledger Consistency", func(t *testing.T) {
		wallet, err := ledger.Wallet(context.Background())
		if err != nil {
			t.Fatalf("Failed to read wallet: %v", err)
		}

		if diff := wallet.Balance - deposited; diff > 0.001 || diff < -0.001 {
			t.Errorf("Balance %.2f does not match deposited total %.2f", wallet.Balance, deposited)
		}

		var ledgerSum float64
		for _, tx := range wallet.Transactions {
			ledgerSum += tx.Amount
		}
		if diff := ledgerSum - deposited; diff > 0.001 || diff < -0.001 {
			t.Errorf("Ledger sum %.2f does not match deposited total %.2f", ledgerSum, deposited)
		}
	})

	// Test summary read performance against the full ledger
	t.Run("Summary Retrieval", func(t *testing.T) {
		startTime := time.Now()
		numReads := numDeposits

		wg := sync.WaitGroup{}
		wg.Add(concurrency)

		readsPerWorker := numReads / concurrency

		for i := 0; i < concurrency; i++ {
			go func(workerID int) {
				defer wg.Done()

				ctx := context.Background()
				for j := 0; j < readsPerWorker; j++ {
					productID := productIDs[(workerID*readsPerWorker+j)%len(productIDs)]
					if _, err := ledger.Summary(ctx, productID); err != nil {
						t.Logf("Error reading summary: %v", err)
					}
				}
			}(i)
		}

		wg.Wait()
		duration := time.Since(startTime)

		throughput := float64(numReads) / duration.Seconds()
		t.Logf("Summaries: %d in %v (%.2f reads/sec)", numReads, duration, throughput)
	})
}

func preloadProducts(t *testing.T, ledger *service.LedgerService, count int) []string {
	t.Helper()

	ctx := context.Background()
	ids := make([]string, 0, count)

	for i := 0; i < count; i++ {
		product, err := ledger.AddProduct(ctx, fmt.Sprintf("Perf product %d", i),
			1000.0+float64(i)*500.0, "", "")
		if err != nil {
			t.Fatalf("Failed to preload product: %v", err)
		}

		if _, err := ledger.CreateSavingsPlan(ctx, product.ID, entity.FrequencyMonthly, 6); err != nil {
			t.Fatalf("Failed to preload savings plan: %v", err)
		}

		ids = append(ids, product.ID)
	}

	return ids
}
