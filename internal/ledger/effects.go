package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/shopspring/decimal"
)

type effectKind int

const (
	effectAccountBalance effectKind = iota
	effectCardUsed
	effectLimitAccrual
)

// effect is one balance mutation derived from a transaction. Deltas are
// signed so the same derivation reverses a transaction by flipping the sign.
type effect struct {
	id    string
	delta decimal.Decimal
	kind  effectKind
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// transactionEffects derives the account and card mutations a transaction
// causes. sign is +1 to apply and -1 to reverse. Pending expenses and income
// produce no effects; cash and pix payments have no tracked source.
func transactionEffects(txn *model.Transaction, sign int64) []effect {
	amount := txn.Amount.Mul(decimal.NewFromInt(sign))

	switch txn.Type {
	case model.TransactionTypeExpense:
		if txn.Status != model.StatusPaid {
			return nil
		}
		switch txn.PaymentMethod {
		case model.PaymentMethodAccount:
			return []effect{{kind: effectAccountBalance, id: txn.PaymentSource, delta: amount.Neg()}}
		case model.PaymentMethodCard:
			return []effect{{kind: effectCardUsed, id: txn.PaymentSource, delta: amount}}
		}
		return nil

	case model.TransactionTypeIncome:
		if txn.Status != model.StatusReceived {
			return nil
		}
		if txn.PaymentMethod == model.PaymentMethodAccount {
			return []effect{{kind: effectAccountBalance, id: txn.PaymentSource, delta: amount}}
		}
		return nil

	case model.TransactionTypeTransfer:
		// Transfers move money regardless of status.
		return []effect{
			{kind: effectAccountBalance, id: txn.Transfer.FromAccountID, delta: amount.Neg()},
			{kind: effectAccountBalance, id: txn.Transfer.ToAccountID, delta: amount},
		}
	}
	return nil
}

// limitEffects derives the accrual mutations a transaction causes against the
// given limits. Only settled expenses accrue; sign reverses accrual on update.
func limitEffects(txn *model.Transaction, limits []model.Limit, sign int64) []effect {
	if txn.Type != model.TransactionTypeExpense || txn.Status != model.StatusPaid {
		return nil
	}
	amount := txn.Amount.Mul(decimal.NewFromInt(sign))

	var effects []effect
	for i := range limits {
		if limits[i].Matches(txn.Category, txn.Subcategory) {
			effects = append(effects, effect{kind: effectLimitAccrual, id: limits[i].ID, delta: amount})
		}
	}
	return effects
}

// applyEffects stages every mutation in memory first, so a missing reference
// fails the whole operation before anything is persisted, then saves the
// touched entities. Each step rounds to two decimal places.
func (e *Engine) applyEffects(ctx context.Context, effects []effect) error {
	accounts := make(map[string]*model.Account)
	cards := make(map[string]*model.Card)
	limits := make(map[string]*model.Limit)

	for _, ef := range effects {
		switch ef.kind {
		case effectAccountBalance:
			account, ok := accounts[ef.id]
			if !ok {
				var err error
				account, err = e.store.GetAccount(ctx, ef.id)
				if err != nil {
					if errors.Is(err, common.ErrNotFound) {
						return fmt.Errorf("%w: account %s", common.ErrReferenceNotFound, ef.id)
					}
					return err
				}
				accounts[ef.id] = account
			}
			account.Balance = round2(account.Balance.Add(ef.delta))

		case effectCardUsed:
			card, ok := cards[ef.id]
			if !ok {
				var err error
				card, err = e.store.GetCard(ctx, ef.id)
				if err != nil {
					if errors.Is(err, common.ErrNotFound) {
						return fmt.Errorf("%w: card %s", common.ErrReferenceNotFound, ef.id)
					}
					return err
				}
				cards[ef.id] = card
			}
			card.Used = round2(card.Used.Add(ef.delta))

		case effectLimitAccrual:
			lim, ok := limits[ef.id]
			if !ok {
				var err error
				lim, err = e.store.GetLimit(ctx, ef.id)
				if err != nil {
					if errors.Is(err, common.ErrNotFound) {
						return fmt.Errorf("%w: limit %s", common.ErrReferenceNotFound, ef.id)
					}
					return err
				}
				limits[ef.id] = lim
			}
			lim.CurrentAmount = round2(lim.CurrentAmount.Add(ef.delta))
		}
	}

	for _, account := range accounts {
		if err := e.store.SaveAccount(ctx, account); err != nil {
			return err
		}
	}
	for _, card := range cards {
		if err := e.store.SaveCard(ctx, card); err != nil {
			return err
		}
	}
	for _, lim := range limits {
		if err := e.store.SaveLimit(ctx, lim); err != nil {
			return err
		}
	}
	return nil
}
