package assistant

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *ledger.Engine) {
	t.Helper()
	engine := ledger.New(storage.NewMemoryStorage(),
		ledger.WithClock(func() time.Time {
			return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
		}),
	)
	return NewDispatcher(engine), engine
}

func rawData(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestDispatchCreateAccount(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	result, err := d.Dispatch(ctx, Command{
		Action: ActionCreateAccount,
		Data: rawData(t, map[string]any{
			"name":            "Nubank",
			"initial_balance": 500,
			"account_type":    "checking",
			"bank_name":       "Nubank",
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Conta criada com sucesso!", result.Message)

	accounts, err := engine.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Nubank", accounts[0].Name)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(500)))
}

func TestDispatchCreateTransaction(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	account, err := engine.CreateAccount(ctx, &model.Account{
		Name:    "Nubank",
		Balance: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	result, err := d.Dispatch(ctx, Command{
		Action:      ActionCreateTransaction,
		Category:    "alimentacao",
		Subcategory: "supermercado",
		Message:     "Gastei 25€ no mercado, anotado!",
		Data: rawData(t, map[string]any{
			"title":          "Mercado",
			"amount":         25,
			"type":           "expense",
			"payment_method": "account",
			"payment_source": account.ID,
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gastei 25€ no mercado, anotado!", result.Message)

	// Expense defaults to paid and debits the account.
	got, err := engine.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(475)))

	transactions, err := engine.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, model.StatusPaid, transactions[0].Status)
	assert.Equal(t, "alimentacao", transactions[0].Category)
}

func TestDispatchIncomeDefaultsToReceived(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Command{
		Action:   ActionCreateTransaction,
		Category: "renda",
		Data: rawData(t, map[string]any{
			"title":  "Salário",
			"amount": 2500,
			"type":   "income",
		}),
	})
	require.NoError(t, err)

	transactions, err := engine.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, model.StatusReceived, transactions[0].Status)
	assert.Equal(t, model.PaymentMethodCash, transactions[0].PaymentMethod)
}

func TestDispatchCreateCardAcceptsEitherLimitKey(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Command{
		Action: ActionCreateCard,
		Data:   rawData(t, map[string]any{"name": "Visa", "credit_limit": 2000}),
	})
	require.NoError(t, err)

	_, err = d.Dispatch(ctx, Command{
		Action: ActionCreateCard,
		Data:   rawData(t, map[string]any{"name": "Master", "limit": 1500, "due_day": 10}),
	})
	require.NoError(t, err)

	cards, err := engine.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.True(t, cards[0].Limit.Equal(decimal.NewFromInt(2000)))
	assert.True(t, cards[1].Limit.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 10, cards[1].DueDate)
}

func TestDispatchCreateGoal(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	result, err := d.Dispatch(ctx, Command{
		Action: ActionCreateGoal,
		Data: rawData(t, map[string]any{
			"title":                "Viagem",
			"target_amount":        1000,
			"monthly_contribution": 100,
			"target_date":          "2025-09-15",
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Meta criada com sucesso!", result.Message)

	goals, err := engine.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 10, goals[0].EstimatedMonths)
	assert.False(t, goals[0].IsRealistic)
}

func TestDispatchCreateLimit(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Command{
		Action:   ActionCreateLimit,
		Category: "alimentacao",
		Data: rawData(t, map[string]any{
			"title":        "Mercado",
			"limit_amount": 400,
			"period":       "monthly",
		}),
	})
	require.NoError(t, err)

	limits, err := engine.ListLimits(ctx)
	require.NoError(t, err)
	require.Len(t, limits, 1)
	assert.Equal(t, 80, limits[0].AlertThreshold)
	assert.True(t, limits[0].IsActive)
	assert.True(t, limits[0].CurrentAmount.IsZero())
}

func TestDispatchQueryAndErrorNeverMutate(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	for _, action := range []Action{ActionQuery, ActionError} {
		result, err := d.Dispatch(ctx, Command{Action: action, Message: "mensagem"})
		require.NoError(t, err)
		assert.Equal(t, "mensagem", result.Message)
	}

	accounts, err := engine.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	transactions, err := engine.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestDispatchResetData(t *testing.T) {
	d, engine := newTestDispatcher(t)
	ctx := context.Background()

	_, err := engine.CreateAccount(ctx, &model.Account{Name: "Nubank"})
	require.NoError(t, err)

	result, err := d.Dispatch(ctx, Command{Action: ActionResetData})
	require.NoError(t, err)
	assert.Equal(t, "Todos os dados foram apagados.", result.Message)

	accounts, err := engine.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestDispatchErrors(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()

	t.Run("unknown action", func(t *testing.T) {
		_, err := d.Dispatch(ctx, Command{Action: "EXPLODE"})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("missing data block", func(t *testing.T) {
		_, err := d.Dispatch(ctx, Command{Action: ActionCreateAccount})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := d.Dispatch(ctx, Command{
			Action: ActionCreateGoal,
			Data: rawData(t, map[string]any{
				"title":         "Viagem",
				"target_amount": 1000,
				"target_date":   "next year",
			}),
		})
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("engine validation propagates", func(t *testing.T) {
		_, err := d.Dispatch(ctx, Command{
			Action:   ActionCreateTransaction,
			Category: "nao-existe",
			Data:     rawData(t, map[string]any{"title": "x", "amount": 10, "type": "expense"}),
		})
		assert.ErrorIs(t, err, common.ErrUnknownCategory)
	})
}
