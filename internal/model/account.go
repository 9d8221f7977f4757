// Package model defines the core financial entities tracked by the application.
package model

import "github.com/shopspring/decimal"

// AccountType identifies the kind of bank account.
type AccountType string

const (
	// AccountTypeChecking represents a current account.
	AccountTypeChecking AccountType = "checking"
	// AccountTypeSavings represents a savings account.
	AccountTypeSavings AccountType = "savings"
	// AccountTypeInvestment represents an investment account.
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a bank account whose balance is mutated only by the
// ledger engine.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    AccountType     `json:"type"`
	Bank    string          `json:"bank,omitempty"`
}
