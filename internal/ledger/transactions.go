package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
)

// CreateTransaction validates the transaction, applies its balance and limit
// effects, and persists it. References are checked before anything is saved,
// so a bad payment source leaves all balances untouched.
func (e *Engine) CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := *txn
	if t.ID == "" {
		t.ID = e.newID()
	}
	if t.Date.IsZero() {
		t.Date = e.now()
	}
	t.Amount = round2(t.Amount)

	if err := e.validateTransaction(ctx, &t); err != nil {
		return nil, err
	}

	// Roll limits over first so accrual lands in the current window.
	limits, err := e.rolloverLimits(ctx)
	if err != nil {
		return nil, err
	}
	effects := append(transactionEffects(&t, +1), limitEffects(&t, limits, +1)...)
	if err := e.applyEffects(ctx, effects); err != nil {
		return nil, err
	}

	if err := e.store.CreateTransaction(ctx, &t); err != nil {
		return nil, err
	}
	slog.Info("transaction created",
		"id", t.ID, "type", t.Type, "amount", t.Amount, "status", t.Status)
	return &t, nil
}

// UpdateTransaction reverses the stored transaction's effects, applies the
// merged transaction's effects, and persists the result. An update that
// changes nothing financially nets out to zero.
func (e *Engine) UpdateTransaction(ctx context.Context, id string, upd service.TransactionUpdate) (*model.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	old, err := e.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := mergeTransaction(old, upd)
	merged.Amount = round2(merged.Amount)

	if err := e.validateTransaction(ctx, merged); err != nil {
		return nil, err
	}

	limits, err := e.rolloverLimits(ctx)
	if err != nil {
		return nil, err
	}
	effects := append(transactionEffects(old, -1), limitEffects(old, limits, -1)...)
	effects = append(effects, transactionEffects(merged, +1)...)
	effects = append(effects, limitEffects(merged, limits, +1)...)
	if err := e.applyEffects(ctx, effects); err != nil {
		return nil, err
	}

	if err := e.store.SaveTransaction(ctx, merged); err != nil {
		return nil, err
	}
	slog.Info("transaction updated",
		"id", merged.ID, "type", merged.Type, "amount", merged.Amount, "status", merged.Status)
	return merged, nil
}

// GetTransaction returns a single transaction.
func (e *Engine) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	return e.store.GetTransaction(ctx, id)
}

// ListTransactions returns all transactions in insertion order.
func (e *Engine) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return e.store.ListTransactions(ctx)
}

func mergeTransaction(old *model.Transaction, upd service.TransactionUpdate) *model.Transaction {
	merged := *old
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Description != nil {
		merged.Description = *upd.Description
	}
	if upd.UserDescription != nil {
		merged.UserDescription = *upd.UserDescription
	}
	if upd.Amount != nil {
		merged.Amount = *upd.Amount
	}
	if upd.Type != nil {
		merged.Type = *upd.Type
	}
	if upd.Category != nil {
		merged.Category = *upd.Category
	}
	if upd.Subcategory != nil {
		merged.Subcategory = *upd.Subcategory
	}
	if upd.PaymentMethod != nil {
		merged.PaymentMethod = *upd.PaymentMethod
	}
	if upd.PaymentSource != nil {
		merged.PaymentSource = *upd.PaymentSource
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.Date != nil {
		merged.Date = *upd.Date
	}
	if upd.IsRecurring != nil {
		merged.IsRecurring = *upd.IsRecurring
	}
	if upd.IsInstallment != nil {
		merged.IsInstallment = *upd.IsInstallment
	}
	if upd.Installment != nil {
		info := *upd.Installment
		merged.Installment = &info
	}
	if upd.Transfer != nil {
		info := *upd.Transfer
		merged.Transfer = &info
	}
	return &merged
}

func (e *Engine) validateTransaction(ctx context.Context, t *model.Transaction) error {
	if t.Title == "" {
		return fmt.Errorf("%w: transaction title is required", common.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", common.ErrInvalidAmount, t.Amount)
	}

	switch t.Type {
	case model.TransactionTypeIncome, model.TransactionTypeExpense:
		if t.Transfer != nil {
			return fmt.Errorf("%w: transfer info is only valid on transfers", common.ErrValidation)
		}
	case model.TransactionTypeTransfer:
		if t.Transfer == nil || t.Transfer.FromAccountID == "" || t.Transfer.ToAccountID == "" {
			return fmt.Errorf("%w: transfer requires source and destination accounts", common.ErrValidation)
		}
		if t.Transfer.FromAccountID == t.Transfer.ToAccountID {
			return fmt.Errorf("%w: transfer accounts must differ", common.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", common.ErrValidation, t.Type)
	}

	switch t.Status {
	case model.StatusPaid, model.StatusReceived, model.StatusPending:
	default:
		return fmt.Errorf("%w: unknown transaction status %q", common.ErrValidation, t.Status)
	}

	switch t.PaymentMethod {
	case model.PaymentMethodAccount, model.PaymentMethodCard:
		if t.Type != model.TransactionTypeTransfer && t.PaymentSource == "" {
			return fmt.Errorf("%w: payment source is required for %s payments", common.ErrValidation, t.PaymentMethod)
		}
	case model.PaymentMethodCash, model.PaymentMethodPix, "":
	default:
		return fmt.Errorf("%w: unknown payment method %q", common.ErrValidation, t.PaymentMethod)
	}

	if t.Type != model.TransactionTypeTransfer || t.Category != "" {
		if t.Category == "" {
			return fmt.Errorf("%w: category is required", common.ErrValidation)
		}
		if err := e.validateCategory(ctx, t.Category, t.Subcategory); err != nil {
			return err
		}
	}
	return nil
}
