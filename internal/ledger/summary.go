package ledger

import (
	"context"

	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
)

// Summary aggregates the financial position: total account balance, the
// current calendar month's income and expenses regardless of status, and the
// all-time settled totals.
func (e *Engine) Summary(ctx context.Context) (*service.FinancialSummary, error) {
	accounts, err := e.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := e.store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	var summary service.FinancialSummary
	for i := range accounts {
		summary.TotalBalance = round2(summary.TotalBalance.Add(accounts[i].Balance))
	}

	now := e.now()
	year, month := now.Year(), now.Month()
	for i := range transactions {
		t := &transactions[i]
		inMonth := t.Date.Year() == year && t.Date.Month() == month

		switch t.Type {
		case model.TransactionTypeIncome:
			if inMonth {
				summary.MonthlyIncome = round2(summary.MonthlyIncome.Add(t.Amount))
			}
			if t.Status == model.StatusReceived {
				summary.TotalReceived = round2(summary.TotalReceived.Add(t.Amount))
			}
		case model.TransactionTypeExpense:
			if inMonth {
				summary.MonthlyExpenses = round2(summary.MonthlyExpenses.Add(t.Amount))
			}
			if t.Status == model.StatusPaid {
				summary.TotalPaid = round2(summary.TotalPaid.Add(t.Amount))
			}
		}
	}
	return &summary, nil
}
