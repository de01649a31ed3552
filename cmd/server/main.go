package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/dgraph-io/badger/v3"
	"github.com/gorilla/mux"
	"github.com/pricepal/pricepal-server/internal/application/service"
	"github.com/pricepal/pricepal-server/internal/config"
	"github.com/pricepal/pricepal-server/internal/infrastructure/cache"
	"github.com/pricepal/pricepal-server/internal/infrastructure/db"
	"github.com/pricepal/pricepal-server/internal/infrastructure/handler"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
	"github.com/pricepal/pricepal-server/internal/infrastructure/middleware"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	log := logger.NewLogrusLogger(os.Stdout, cfg.Log.Level)
	logger.SetDefaultLogger(log)

	log.Info("Starting PricePal ledger server", map[string]interface{}{
		"db_path": cfg.Store.Path,
	})

	// Setup BadgerDB
	if err := os.MkdirAll(cfg.Store.Path, 0755); err != nil {
		log.Fatal("Failed to create database directory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	badgerOpts := badger.DefaultOptions(cfg.Store.Path)
	badgerOpts.Logger = nil // Disable Badger's default logger

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		log.Fatal("Failed to open database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	defer func() {
		if err := badgerDB.Close(); err != nil {
			log.Error("Error closing BadgerDB", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Initialize repositories
	productRepo := db.NewBadgerProductRepository(badgerDB)
	walletRepo := db.NewBadgerWalletRepository(badgerDB)
	planRepo := db.NewBadgerPlanRepository(badgerDB)
	userRepo := db.NewBadgerUserRepository(badgerDB)

	if cfg.Store.SeedDemo {
		err := db.SeedDemoData(context.Background(), userRepo, productRepo, walletRepo, planRepo, cfg.Store.DemoPassword)
		if err != nil {
			log.Fatal("Failed to seed demo data", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Initialize services
	summaries := cache.NewSummaryCache()
	ledgerService := service.NewLedgerService(productRepo, walletRepo, planRepo, summaries, log)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, log)
	productHandler := handler.NewProductHandler(ledgerService, log)
	walletHandler := handler.NewWalletHandler(ledgerService, log)
	planHandler := handler.NewPlanHandler(ledgerService, log)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))

	authHandler.RegisterRoutes(router)

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware([]byte(cfg.Auth.JWTSecret)))
	productHandler.RegisterRoutes(protected)
	walletHandler.RegisterRoutes(protected)
	planHandler.RegisterRoutes(protected)

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", map[string]interface{}{
		"addr": serverAddr,
	})
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		log.Fatal("Failed to start server", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
