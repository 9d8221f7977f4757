package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
	"github.com/Jhonatansales/gestao-financeira/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// testClock is a fixed point in time so projections and limit cycles are
// deterministic.
var testClock = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	seq := 0
	return New(storage.NewMemoryStorage(),
		WithClock(func() time.Time { return testClock }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
	)
}

func createAccount(t *testing.T, e *Engine, name, balance string) *model.Account {
	t.Helper()
	account, err := e.CreateAccount(context.Background(), &model.Account{
		Name:    name,
		Balance: d(balance),
	})
	require.NoError(t, err)
	return account
}

func createCard(t *testing.T, e *Engine, name, limit string) *model.Card {
	t.Helper()
	card, err := e.CreateCard(context.Background(), &model.Card{
		Name:  name,
		Limit: d(limit),
	})
	require.NoError(t, err)
	return card
}

func TestCreateAccount(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	account, err := e.CreateAccount(ctx, &model.Account{Name: "Nubank", Balance: d("500.005")})
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, model.AccountTypeChecking, account.Type)
	assert.True(t, account.Balance.Equal(d("500.01")), "balance should be rounded to cents")

	_, err = e.CreateAccount(ctx, &model.Account{Name: ""})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdateAccountDoesNotTouchBalance(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")

	name := "Nubank PJ"
	updated, err := e.UpdateAccount(ctx, account.ID, service.AccountUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Nubank PJ", updated.Name)
	assert.True(t, updated.Balance.Equal(d("500")))
}

func TestExpensePaidFromAccount(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Mercado",
		Amount:        d("25"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		Subcategory:   "supermercado",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	got, err := e.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(d("475")), "balance should be 475, got %s", got.Balance)
}

func TestExpensePaidOnCard(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	card := createCard(t, e, "Visa", "2000")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Notebook",
		Amount:        d("300"),
		Type:          model.TransactionTypeExpense,
		Category:      "compras-lazer",
		Subcategory:   "eletronicos",
		PaymentMethod: model.PaymentMethodCard,
		PaymentSource: card.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	got, err := e.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, got.Used.Equal(d("300")))
	assert.True(t, got.Available().Equal(d("1700")))
}

func TestPendingTransactionHasNoEffect(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Conta de luz",
		Amount:        d("80"),
		Type:          model.TransactionTypeExpense,
		Category:      "moradia",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPending,
	})
	require.NoError(t, err)

	got, err := e.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(d("500")))
}

func TestIncomeReceived(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "100")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Salário",
		Amount:        d("2500"),
		Type:          model.TransactionTypeIncome,
		Category:      "renda",
		Subcategory:   "salarios",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusReceived,
	})
	require.NoError(t, err)

	got, err := e.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(d("2600")))
}

func TestTransferConservesMoney(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	from := createAccount(t, e, "Corrente", "800")
	to := createAccount(t, e, "Poupança", "200")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:  "Poupança do mês",
		Amount: d("150"),
		Type:   model.TransactionTypeTransfer,
		Status: model.StatusPending, // transfers move money regardless of status
		Transfer: &model.TransferInfo{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
		},
	})
	require.NoError(t, err)

	gotFrom, err := e.GetAccount(ctx, from.ID)
	require.NoError(t, err)
	gotTo, err := e.GetAccount(ctx, to.ID)
	require.NoError(t, err)

	assert.True(t, gotFrom.Balance.Equal(d("650")))
	assert.True(t, gotTo.Balance.Equal(d("350")))
	total := gotFrom.Balance.Add(gotTo.Balance)
	assert.True(t, total.Equal(d("1000")), "transfer must conserve total balance")
}

func TestTransactionValidation(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")

	tests := []struct {
		name    string
		txn     model.Transaction
		wantErr error
	}{
		{
			name: "missing title",
			txn: model.Transaction{
				Amount: d("10"), Type: model.TransactionTypeExpense,
				Category: "alimentacao", Status: model.StatusPaid,
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "zero amount",
			txn: model.Transaction{
				Title: "x", Amount: d("0"), Type: model.TransactionTypeExpense,
				Category: "alimentacao", Status: model.StatusPaid,
			},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			txn: model.Transaction{
				Title: "x", Amount: d("-5"), Type: model.TransactionTypeExpense,
				Category: "alimentacao", Status: model.StatusPaid,
			},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name: "unknown category",
			txn: model.Transaction{
				Title: "x", Amount: d("10"), Type: model.TransactionTypeExpense,
				Category: "nao-existe", Status: model.StatusPaid,
			},
			wantErr: common.ErrUnknownCategory,
		},
		{
			name: "unknown subcategory",
			txn: model.Transaction{
				Title: "x", Amount: d("10"), Type: model.TransactionTypeExpense,
				Category: "alimentacao", Subcategory: "nao-existe", Status: model.StatusPaid,
			},
			wantErr: common.ErrUnknownCategory,
		},
		{
			name: "account payment without source",
			txn: model.Transaction{
				Title: "x", Amount: d("10"), Type: model.TransactionTypeExpense,
				Category: "alimentacao", Status: model.StatusPaid,
				PaymentMethod: model.PaymentMethodAccount,
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "transfer without destination",
			txn: model.Transaction{
				Title: "x", Amount: d("10"), Type: model.TransactionTypeTransfer,
				Status:   model.StatusPending,
				Transfer: &model.TransferInfo{FromAccountID: account.ID},
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "transfer to the same account",
			txn: model.Transaction{
				Title: "x", Amount: d("10"), Type: model.TransactionTypeTransfer,
				Status:   model.StatusPending,
				Transfer: &model.TransferInfo{FromAccountID: account.ID, ToAccountID: account.ID},
			},
			wantErr: common.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.CreateTransaction(ctx, &tt.txn)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnknownPaymentSourceFailsWithoutSideEffects(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Mercado",
		Amount:        d("25"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: "nope",
		Status:        model.StatusPaid,
	})
	require.ErrorIs(t, err, common.ErrReferenceNotFound)

	// Nothing was persisted.
	transactions, err := e.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	got, err := e.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(d("500")))
}

func TestTransferReferenceCheckedBeforeAnyMutation(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	from := createAccount(t, e, "Corrente", "800")

	_, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:  "Transferência",
		Amount: d("150"),
		Type:   model.TransactionTypeTransfer,
		Status: model.StatusPending,
		Transfer: &model.TransferInfo{
			FromAccountID: from.ID,
			ToAccountID:   "missing",
		},
	})
	require.ErrorIs(t, err, common.ErrReferenceNotFound)

	got, err := e.GetAccount(ctx, from.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(d("800")), "source account must not be debited")
}

func TestUpdateTransactionReversesOldEffect(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")

	txn, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Mercado",
		Amount:        d("25"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	t.Run("amount change applies the difference", func(t *testing.T) {
		amount := d("40")
		_, err := e.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{Amount: &amount})
		require.NoError(t, err)

		got, err := e.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(d("460")), "balance should be 500-40, got %s", got.Balance)
	})

	t.Run("settling to pending refunds the account", func(t *testing.T) {
		status := model.StatusPending
		_, err := e.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{Status: &status})
		require.NoError(t, err)

		got, err := e.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(d("500")))
	})

	t.Run("settling again re-applies", func(t *testing.T) {
		status := model.StatusPaid
		_, err := e.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{Status: &status})
		require.NoError(t, err)

		got, err := e.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(d("460")))
	})

	t.Run("no-op update leaves balances unchanged", func(t *testing.T) {
		title := "Mercado do bairro"
		_, err := e.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{Title: &title})
		require.NoError(t, err)

		got, err := e.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(d("460")))
	})
}

func TestUpdateTransactionMovesBetweenSources(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "500")
	card := createCard(t, e, "Visa", "2000")

	txn, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Jantar",
		Amount:        d("60"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	method := model.PaymentMethodCard
	_, err = e.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{
		PaymentMethod: &method,
		PaymentSource: &card.ID,
	})
	require.NoError(t, err)

	gotAccount, err := e.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	gotCard, err := e.GetCard(ctx, card.ID)
	require.NoError(t, err)

	assert.True(t, gotAccount.Balance.Equal(d("500")), "account should be refunded")
	assert.True(t, gotCard.Used.Equal(d("60")), "card should carry the expense")
}

func TestLimitAccrual(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "5000")

	lim, err := e.CreateLimit(ctx, &model.Limit{
		Title:       "Mercado",
		Category:    "alimentacao",
		LimitAmount: d("400"),
		Period:      model.PeriodMonthly,
	})
	require.NoError(t, err)
	require.Equal(t, 80, lim.AlertThreshold)

	spend := func(amount string, status model.TransactionStatus) {
		t.Helper()
		_, err := e.CreateTransaction(ctx, &model.Transaction{
			Title:         "Compra",
			Amount:        d(amount),
			Type:          model.TransactionTypeExpense,
			Category:      "alimentacao",
			PaymentMethod: model.PaymentMethodAccount,
			PaymentSource: account.ID,
			Status:        status,
		})
		require.NoError(t, err)
	}

	spend("150", model.StatusPaid)
	spend("180", model.StatusPaid)
	spend("500", model.StatusPending) // pending never accrues

	got, err := e.GetLimit(ctx, lim.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentAmount.Equal(d("330")), "accrued should be 330, got %s", got.CurrentAmount)
}

func TestLimitAccrualRespectsSubcategoryFilter(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "5000")

	lim, err := e.CreateLimit(ctx, &model.Limit{
		Title:       "Só supermercado",
		Category:    "alimentacao",
		Subcategory: "supermercado",
		LimitAmount: d("300"),
		Period:      model.PeriodMonthly,
	})
	require.NoError(t, err)

	create := func(subcategory, amount string) {
		t.Helper()
		_, err := e.CreateTransaction(ctx, &model.Transaction{
			Title:         "Compra",
			Amount:        d(amount),
			Type:          model.TransactionTypeExpense,
			Category:      "alimentacao",
			Subcategory:   subcategory,
			PaymentMethod: model.PaymentMethodAccount,
			PaymentSource: account.ID,
			Status:        model.StatusPaid,
		})
		require.NoError(t, err)
	}

	create("supermercado", "100")
	create("cafeterias", "50")

	got, err := e.GetLimit(ctx, lim.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentAmount.Equal(d("100")))
}

func TestLimitAccrualReversedOnUpdate(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "5000")

	lim, err := e.CreateLimit(ctx, &model.Limit{
		Title:       "Mercado",
		Category:    "alimentacao",
		LimitAmount: d("400"),
		Period:      model.PeriodMonthly,
	})
	require.NoError(t, err)

	txn, err := e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Compra",
		Amount:        d("150"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	// Recategorizing away from the limited category releases the accrual.
	category := "transporte"
	_, err = e.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{Category: &category})
	require.NoError(t, err)

	got, err := e.GetLimit(ctx, lim.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentAmount.IsZero(), "accrual should be released, got %s", got.CurrentAmount)
}

func TestLimitStateProgression(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	account := createAccount(t, e, "Nubank", "5000")

	lim, err := e.CreateLimit(ctx, &model.Limit{
		Title:       "Mercado",
		Category:    "alimentacao",
		LimitAmount: d("400"),
		Period:      model.PeriodMonthly,
	})
	require.NoError(t, err)
	require.Equal(t, testClock, lim.StartDate)
	require.Equal(t, testClock.AddDate(0, 1, 0), lim.ResetDate)

	_, err = e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Compra",
		Amount:        d("330"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	got, err := e.GetLimit(ctx, lim.ID)
	require.NoError(t, err)
	// 330/400 = 82.5%, at the default 80% threshold.
	assert.True(t, got.CurrentAmount.Equal(d("330")))
}

func TestGoalProjectionOnCreateAndRead(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	created, err := e.CreateGoal(ctx, &model.Goal{
		Title:               "Viagem",
		TargetAmount:        d("1000"),
		CurrentAmount:       d("0"),
		MonthlyContribution: d("100"),
		TargetDate:          testClock.AddDate(0, 0, 180),
	})
	require.NoError(t, err)

	assert.Equal(t, model.GoalStatusActive, created.Status)
	assert.Equal(t, model.PriorityMedium, created.Priority)
	assert.Equal(t, 10, created.EstimatedMonths)
	assert.False(t, created.IsRealistic)
	assert.Contains(t, created.AISuggestion, "167.00")

	t.Run("projection refreshed after update", func(t *testing.T) {
		monthly := d("200")
		updated, err := e.UpdateGoal(ctx, created.ID, service.GoalUpdate{MonthlyContribution: &monthly})
		require.NoError(t, err)

		assert.Equal(t, 5, updated.EstimatedMonths)
		assert.True(t, updated.IsRealistic)
		assert.Empty(t, updated.AISuggestion)
	})

	t.Run("list carries projections", func(t *testing.T) {
		goals, err := e.ListGoals(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.True(t, goals[0].IsRealistic)
	})
}

func TestGoalValidation(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.CreateGoal(ctx, &model.Goal{Title: "x", TargetAmount: d("0")})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = e.CreateGoal(ctx, &model.Goal{TargetAmount: d("100")})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLimitRolloverOnRead(t *testing.T) {
	store := storage.NewMemoryStorage()
	now := testClock
	e := New(store, WithClock(func() time.Time { return now }))
	ctx := context.Background()
	account, err := e.CreateAccount(ctx, &model.Account{Name: "Nubank", Balance: d("5000")})
	require.NoError(t, err)

	lim, err := e.CreateLimit(ctx, &model.Limit{
		Title:       "Mercado",
		Category:    "alimentacao",
		LimitAmount: d("400"),
		Period:      model.PeriodMonthly,
	})
	require.NoError(t, err)

	_, err = e.CreateTransaction(ctx, &model.Transaction{
		Title:         "Compra",
		Amount:        d("150"),
		Type:          model.TransactionTypeExpense,
		Category:      "alimentacao",
		PaymentMethod: model.PaymentMethodAccount,
		PaymentSource: account.ID,
		Status:        model.StatusPaid,
	})
	require.NoError(t, err)

	// Jump past the reset date; the next read rolls the window over.
	now = testClock.AddDate(0, 1, 5)

	got, err := e.GetLimit(ctx, lim.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentAmount.IsZero())
	assert.Equal(t, testClock.AddDate(0, 2, 0), got.ResetDate)

	// The rolled-over state was persisted, not just computed.
	stored, err := store.GetLimit(ctx, lim.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.IsZero())
}

func TestSummary(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	createAccount(t, e, "Nubank", "1000")
	createAccount(t, e, "Poupança", "500")

	add := func(txnType model.TransactionType, amount string, status model.TransactionStatus, date time.Time) {
		t.Helper()
		category := "alimentacao"
		if txnType == model.TransactionTypeIncome {
			category = "renda"
		}
		_, err := e.CreateTransaction(ctx, &model.Transaction{
			Title:         "t",
			Amount:        d(amount),
			Type:          txnType,
			Category:      category,
			PaymentMethod: model.PaymentMethodCash,
			Status:        status,
			Date:          date,
		})
		require.NoError(t, err)
	}

	add(model.TransactionTypeIncome, "2000", model.StatusReceived, testClock)
	add(model.TransactionTypeIncome, "300", model.StatusPending, testClock)
	add(model.TransactionTypeExpense, "150", model.StatusPaid, testClock)
	add(model.TransactionTypeExpense, "50", model.StatusPending, testClock)
	// Outside the current month: excluded from monthly, included in totals.
	add(model.TransactionTypeExpense, "999", model.StatusPaid, testClock.AddDate(0, -1, 0))

	summary, err := e.Summary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalBalance.Equal(d("1500")))
	assert.True(t, summary.MonthlyIncome.Equal(d("2300")), "monthly income counts pending too")
	assert.True(t, summary.MonthlyExpenses.Equal(d("200")))
	assert.True(t, summary.TotalReceived.Equal(d("2000")))
	assert.True(t, summary.TotalPaid.Equal(d("1149")))
}

func TestResetAllData(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	createAccount(t, e, "Nubank", "1000")
	createCard(t, e, "Visa", "2000")

	require.NoError(t, e.ResetAllData(ctx))

	accounts, err := e.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	cards, err := e.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCustomCategories(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("custom category is usable by transactions", func(t *testing.T) {
		cat, err := e.CreateCustomCategory(ctx, "Hobby", "Palette", model.CategoryTypeExpense)
		require.NoError(t, err)
		assert.True(t, len(cat.ID) > len("custom-"))

		_, err = e.CreateTransaction(ctx, &model.Transaction{
			Title:         "Tintas",
			Amount:        d("30"),
			Type:          model.TransactionTypeExpense,
			Category:      cat.ID,
			PaymentMethod: model.PaymentMethodCash,
			Status:        model.StatusPaid,
		})
		assert.NoError(t, err)
	})

	t.Run("subcategory on builtin creates a shadow copy", func(t *testing.T) {
		shadow, err := e.AddCustomSubcategory(ctx, "alimentacao", "Feira", "Carrot")
		require.NoError(t, err)
		assert.Equal(t, "custom-alimentacao", shadow.ID)

		categories, err := e.Categories(ctx)
		require.NoError(t, err)

		var resolved *model.Category
		for i := range categories {
			if categories[i].ID == "custom-alimentacao" {
				resolved = &categories[i]
			}
			// The builtin must be shadowed out of the resolved list.
			assert.NotEqual(t, "alimentacao", categories[i].ID)
		}
		require.NotNil(t, resolved)
		assert.Len(t, resolved.Subcategories, 4) // 3 builtin + Feira
	})
}
