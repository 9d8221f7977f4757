package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the financial direction of a transaction.
type TransactionType string

const (
	// TransactionTypeIncome represents money coming in.
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense represents money going out.
	TransactionTypeExpense TransactionType = "expense"
	// TransactionTypeTransfer represents money moving between two accounts.
	TransactionTypeTransfer TransactionType = "transfer"
)

// PaymentMethod identifies how a transaction was paid.
type PaymentMethod string

const (
	// PaymentMethodAccount pays directly from a bank account.
	PaymentMethodAccount PaymentMethod = "account"
	// PaymentMethodCard pays with a registered card.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodCash pays with cash, no tracked source.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodPix pays via pix, no tracked source.
	PaymentMethodPix PaymentMethod = "pix"
)

// TransactionStatus identifies whether the financial effect has occurred.
type TransactionStatus string

const (
	// StatusPaid means a settled expense.
	StatusPaid TransactionStatus = "paid"
	// StatusReceived means settled income.
	StatusReceived TransactionStatus = "received"
	// StatusPending means the effect has not occurred yet.
	StatusPending TransactionStatus = "pending"
)

// InstallmentInfo describes the position of a transaction within an
// installment plan.
type InstallmentInfo struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// TransferInfo names the two accounts involved in a transfer. Present iff
// the transaction type is transfer.
type TransferInfo struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
}

// Transaction represents a single financial movement. Each create or update
// triggers exactly one ledger engine application.
type Transaction struct {
	Date            time.Time         `json:"date"`
	Installment     *InstallmentInfo  `json:"installmentInfo,omitempty"`
	Transfer        *TransferInfo     `json:"transferInfo,omitempty"`
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	UserDescription string            `json:"userDescription,omitempty"`
	Category        string            `json:"category"`
	Subcategory     string            `json:"subcategory,omitempty"`
	PaymentSource   string            `json:"paymentSource,omitempty"` // account or card id
	Type            TransactionType   `json:"type"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Status          TransactionStatus `json:"status"`
	Amount          decimal.Decimal   `json:"amount"`
	IsRecurring     bool              `json:"isRecurring,omitempty"`
	IsInstallment   bool              `json:"isInstallment,omitempty"`
}

// Settled reports whether the transaction's financial effect has occurred:
// paid for expenses, received for income. Transfers always settle.
func (t *Transaction) Settled() bool {
	switch t.Type {
	case TransactionTypeExpense:
		return t.Status == StatusPaid
	case TransactionTypeIncome:
		return t.Status == StatusReceived
	case TransactionTypeTransfer:
		return true
	}
	return false
}
