// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

// Storage defines the contract for our persistence layer. The ledger engine
// depends only on this port; implementations exist for volatile memory and
// sqlite. No entity has a delete operation.
type Storage interface {
	// Account operations
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	SaveAccount(ctx context.Context, account *model.Account) error

	// Card operations
	CreateCard(ctx context.Context, card *model.Card) error
	GetCard(ctx context.Context, id string) (*model.Card, error)
	ListCards(ctx context.Context) ([]model.Card, error)
	SaveCard(ctx context.Context, card *model.Card) error

	// Transaction operations
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	SaveTransaction(ctx context.Context, txn *model.Transaction) error

	// Goal operations
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoal(ctx context.Context, id string) (*model.Goal, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	SaveGoal(ctx context.Context, goal *model.Goal) error

	// Limit operations
	CreateLimit(ctx context.Context, limit *model.Limit) error
	GetLimit(ctx context.Context, id string) (*model.Limit, error)
	ListLimits(ctx context.Context) ([]model.Limit, error)
	SaveLimit(ctx context.Context, limit *model.Limit) error

	// Custom category operations
	CreateCustomCategory(ctx context.Context, category *model.Category) error
	ListCustomCategories(ctx context.Context) ([]model.Category, error)
	SaveCustomCategory(ctx context.Context, category *model.Category) error

	// Database management
	ResetAllData(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}
