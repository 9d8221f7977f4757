package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := createTestStorage(t)
	// Running migrations again must be a no-op.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestAccountRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	account := &model.Account{
		ID:      "acc-1",
		Name:    "Nubank",
		Balance: decimal.RequireFromString("1234.56"),
		Type:    model.AccountTypeChecking,
		Bank:    "Nubank",
	}
	require.NoError(t, store.CreateAccount(ctx, account))

	got, err := store.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, account.Name, got.Name)
	assert.True(t, got.Balance.Equal(account.Balance))

	got.Balance = decimal.RequireFromString("1000.00")
	require.NoError(t, store.SaveAccount(ctx, got))

	reloaded, err := store.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("1000.00")))

	t.Run("get missing", func(t *testing.T) {
		_, err := store.GetAccount(ctx, "nope")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("save missing", func(t *testing.T) {
		err := store.SaveAccount(ctx, &model.Account{ID: "nope", Name: "x"})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestCardRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	card := &model.Card{
		ID:          "card-1",
		Name:        "Visa",
		Limit:       decimal.RequireFromString("2000"),
		Used:        decimal.RequireFromString("300"),
		Type:        model.CardTypeCredit,
		DueDate:     10,
		ClosingDate: 3,
	}
	require.NoError(t, store.CreateCard(ctx, card))

	got, err := store.GetCard(ctx, "card-1")
	require.NoError(t, err)
	assert.True(t, got.Used.Equal(card.Used))
	assert.Equal(t, 10, got.DueDate)
	assert.True(t, got.Available().Equal(decimal.RequireFromString("1700")))
}

func TestTransactionRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("with installment info", func(t *testing.T) {
		txn := &model.Transaction{
			ID:            "txn-1",
			Title:         "Notebook",
			Amount:        decimal.RequireFromString("300"),
			Type:          model.TransactionTypeExpense,
			Category:      "compras-lazer",
			Subcategory:   "eletronicos",
			PaymentMethod: model.PaymentMethodCard,
			PaymentSource: "card-1",
			Status:        model.StatusPaid,
			Date:          date,
			IsInstallment: true,
			Installment:   &model.InstallmentInfo{Current: 2, Total: 12},
		}
		require.NoError(t, store.CreateTransaction(ctx, txn))

		got, err := store.GetTransaction(ctx, "txn-1")
		require.NoError(t, err)
		require.NotNil(t, got.Installment)
		assert.Equal(t, 2, got.Installment.Current)
		assert.Equal(t, 12, got.Installment.Total)
		assert.Nil(t, got.Transfer)
		assert.True(t, got.Date.Equal(date))
	})

	t.Run("with transfer info", func(t *testing.T) {
		txn := &model.Transaction{
			ID:       "txn-2",
			Title:    "Poupança",
			Amount:   decimal.RequireFromString("150"),
			Type:     model.TransactionTypeTransfer,
			Category: "renda",
			Status:   model.StatusPending,
			Date:     date,
			Transfer: &model.TransferInfo{FromAccountID: "acc-1", ToAccountID: "acc-2"},
		}
		require.NoError(t, store.CreateTransaction(ctx, txn))

		got, err := store.GetTransaction(ctx, "txn-2")
		require.NoError(t, err)
		require.NotNil(t, got.Transfer)
		assert.Equal(t, "acc-1", got.Transfer.FromAccountID)
		assert.Equal(t, "acc-2", got.Transfer.ToAccountID)
		assert.Nil(t, got.Installment)
	})

	t.Run("save rewrites every field", func(t *testing.T) {
		got, err := store.GetTransaction(ctx, "txn-1")
		require.NoError(t, err)

		got.Status = model.StatusPending
		got.Amount = decimal.RequireFromString("280")
		require.NoError(t, store.SaveTransaction(ctx, got))

		reloaded, err := store.GetTransaction(ctx, "txn-1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, reloaded.Status)
		assert.True(t, reloaded.Amount.Equal(decimal.RequireFromString("280")))
	})

	t.Run("list", func(t *testing.T) {
		transactions, err := store.ListTransactions(ctx)
		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})
}

func TestGoalRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	goal := &model.Goal{
		ID:                  "goal-1",
		Title:               "Viagem",
		TargetAmount:        decimal.RequireFromString("1000"),
		CurrentAmount:       decimal.RequireFromString("250"),
		MonthlyContribution: decimal.RequireFromString("100"),
		TargetDate:          time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:           time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Priority:            model.PriorityHigh,
		Status:              model.GoalStatusActive,
		EstimatedMonths:     8,
		IsRealistic:         true,
	}
	require.NoError(t, store.CreateGoal(ctx, goal))

	got, err := store.GetGoal(ctx, "goal-1")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, 8, got.EstimatedMonths)
	assert.True(t, got.IsRealistic)
	assert.True(t, got.CurrentAmount.Equal(goal.CurrentAmount))
}

func TestLimitRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	lim := &model.Limit{
		ID:             "limit-1",
		Title:          "Mercado",
		Category:       "alimentacao",
		Subcategory:    "supermercado",
		LimitAmount:    decimal.RequireFromString("400"),
		CurrentAmount:  decimal.RequireFromString("150"),
		Period:         model.PeriodMonthly,
		AlertThreshold: 80,
		IsActive:       true,
		StartDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ResetDate:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateLimit(ctx, lim))

	got, err := store.GetLimit(ctx, "limit-1")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, model.PeriodMonthly, got.Period)
	assert.True(t, got.CurrentAmount.Equal(lim.CurrentAmount))
	assert.True(t, got.ResetDate.Equal(lim.ResetDate))
}

func TestCustomCategoryRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	category := &model.Category{
		ID:   "custom-abc",
		Name: "Hobby",
		Icon: "Palette",
		Type: model.CategoryTypeExpense,
		Subcategories: []model.SubCategory{
			{ID: "sub-1", Name: "Tintas", Icon: "Brush"},
		},
	}
	require.NoError(t, store.CreateCustomCategory(ctx, category))

	categories, err := store.ListCustomCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Subcategories, 1)
	assert.Equal(t, "Tintas", categories[0].Subcategories[0].Name)

	t.Run("save replaces subcategories", func(t *testing.T) {
		categories[0].Subcategories = append(categories[0].Subcategories,
			model.SubCategory{ID: "sub-2", Name: "Pincéis"})
		require.NoError(t, store.SaveCustomCategory(ctx, &categories[0]))

		reloaded, err := store.ListCustomCategories(ctx)
		require.NoError(t, err)
		require.Len(t, reloaded, 1)
		assert.Len(t, reloaded[0].Subcategories, 2)
	})
}

func TestResetAllData(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateAccount(ctx, &model.Account{ID: "a", Name: "x"}))
	require.NoError(t, store.CreateCard(ctx, &model.Card{ID: "c", Name: "y"}))
	require.NoError(t, store.ResetAllData(ctx))

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	cards, err := store.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestNilContextRejected(t *testing.T) {
	store := createTestStorage(t)

	//nolint:staticcheck // explicitly testing nil context handling
	err := store.CreateAccount(nil, &model.Account{ID: "a", Name: "x"})
	assert.Error(t, err)
}
