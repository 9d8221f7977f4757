package service

import (
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/shopspring/decimal"
)

// Partial update payloads. Nil fields are left untouched; the engine merges
// them onto the stored record before re-applying ledger effects.

// AccountUpdate is a partial update of an account. Balance is deliberately
// absent: balances are mutated only by the ledger engine.
type AccountUpdate struct {
	Name *string
	Type *model.AccountType
	Bank *string
}

// CardUpdate is a partial update of a card. Used is deliberately absent:
// usage is mutated only by the ledger engine.
type CardUpdate struct {
	Name        *string
	Limit       *decimal.Decimal
	Type        *model.CardType
	Bank        *string
	DueDate     *int
	ClosingDate *int
}

// TransactionUpdate is a partial update of a transaction.
type TransactionUpdate struct {
	Title           *string
	Description     *string
	UserDescription *string
	Amount          *decimal.Decimal
	Type            *model.TransactionType
	Category        *string
	Subcategory     *string
	PaymentMethod   *model.PaymentMethod
	PaymentSource   *string
	Status          *model.TransactionStatus
	Date            *time.Time
	IsRecurring     *bool
	IsInstallment   *bool
	Installment     *model.InstallmentInfo
	Transfer        *model.TransferInfo
}

// GoalUpdate is a partial update of a goal. The projection fields
// (estimatedMonths, isRealistic, aiSuggestion) are recomputed by the engine,
// never set directly.
type GoalUpdate struct {
	Title               *string
	Description         *string
	ImageURL            *string
	TargetAmount        *decimal.Decimal
	CurrentAmount       *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	TargetDate          *time.Time
	Category            *string
	Priority            *model.GoalPriority
	Status              *model.GoalStatus
}

// LimitUpdate is a partial update of a limit. ResetDate is recomputed by the
// engine when StartDate or Period change; CurrentAmount moves only through
// ledger accrual and rollover.
type LimitUpdate struct {
	Title          *string
	Category       *string
	Subcategory    *string
	LimitAmount    *decimal.Decimal
	Period         *model.LimitPeriod
	AlertThreshold *int
	IsActive       *bool
	StartDate      *time.Time
	StartType      *model.StartType
}
