package service

import "github.com/shopspring/decimal"

// FinancialSummary is the read-only overview exposed to report collaborators.
// Monthly figures cover the current calendar month regardless of status;
// TotalReceived and TotalPaid cover settled transactions only.
type FinancialSummary struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalReceived   decimal.Decimal `json:"totalReceived"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
}
