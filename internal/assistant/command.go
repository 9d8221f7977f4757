// Package assistant implements the command boundary between a natural
// language model and the ledger engine. Model output is parsed into a typed
// command and dispatched; malformed output degrades to a surfaced error
// command, never a crash.
package assistant

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Action identifies what a parsed command asks the engine to do.
type Action string

const (
	ActionCreateTransaction Action = "CREATE_TRANSACTION"
	ActionCreateAccount     Action = "CREATE_ACCOUNT"
	ActionCreateCard        Action = "CREATE_CARD"
	ActionCreateGoal        Action = "CREATE_GOAL"
	ActionCreateLimit       Action = "CREATE_LIMIT"
	ActionResetData         Action = "RESET_DATA"
	ActionQuery             Action = "QUERY"
	ActionError             Action = "ERROR"
)

// Command is the structured contract the language model must emit. Data is
// decoded lazily by the dispatcher according to Action.
type Command struct {
	Action      Action          `json:"action"`
	Data        json.RawMessage `json:"data,omitempty"`
	Message     string          `json:"message"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	Confidence  float64         `json:"confidence,omitempty"`
}

// TransactionPayload is the data block of a CREATE_TRANSACTION command.
type TransactionPayload struct {
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentSource string          `json:"payment_source,omitempty"`
	Status        string          `json:"status,omitempty"`
	Date          string          `json:"date,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// AccountPayload is the data block of a CREATE_ACCOUNT command.
type AccountPayload struct {
	Name           string          `json:"name"`
	AccountType    string          `json:"account_type,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// CardPayload is the data block of a CREATE_CARD command. Models emit the
// limit under either credit_limit or limit; both are accepted.
type CardPayload struct {
	Name        string          `json:"name"`
	BankName    string          `json:"bank_name,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Limit       decimal.Decimal `json:"limit"`
	UsedAmount  decimal.Decimal `json:"used_amount"`
	DueDay      int             `json:"due_day,omitempty"`
	ClosingDay  int             `json:"closing_day,omitempty"`
}

// GoalPayload is the data block of a CREATE_GOAL command.
type GoalPayload struct {
	Title               string          `json:"title"`
	Description         string          `json:"description,omitempty"`
	TargetDate          string          `json:"target_date"`
	Priority            string          `json:"priority,omitempty"`
	Category            string          `json:"category,omitempty"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
}

// LimitPayload is the data block of a CREATE_LIMIT command.
type LimitPayload struct {
	Title          string          `json:"title"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory,omitempty"`
	Period         string          `json:"period"`
	StartDate      string          `json:"start_date,omitempty"`
	StartType      string          `json:"start_type,omitempty"`
	LimitAmount    decimal.Decimal `json:"limit_amount"`
	AlertThreshold int             `json:"alert_threshold,omitempty"`
}
