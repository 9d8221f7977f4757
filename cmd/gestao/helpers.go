package main

import (
	"context"
	"fmt"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/config"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/Jhonatansales/gestao-financeira/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine initializes storage and wraps it in a ledger engine. The caller
// owns closing the returned storage.
func initEngine(ctx context.Context) (*ledger.Engine, service.Storage, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(store), store, nil
}

// parseAmount parses a decimal amount from a CLI argument.
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid amount", common.ErrInvalidAmount, value)
	}
	return amount, nil
}
