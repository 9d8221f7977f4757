package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Result is what a dispatched command produced: the message to show the user
// and the entity created, if any.
type Result struct {
	Entity  any    `json:"entity,omitempty"`
	Message string `json:"message"`
}

// Dispatcher executes parsed commands against the ledger engine.
type Dispatcher struct {
	engine *ledger.Engine
	now    func() time.Time
}

// NewDispatcher creates a dispatcher bound to the given engine.
func NewDispatcher(engine *ledger.Engine) *Dispatcher {
	return &Dispatcher{engine: engine, now: time.Now}
}

// Dispatch executes a command. QUERY and ERROR commands never mutate state;
// their message is passed through. Unknown actions are validation errors.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (*Result, error) {
	slog.Info("dispatching assistant command", "action", cmd.Action, "confidence", cmd.Confidence)

	switch cmd.Action {
	case ActionCreateTransaction:
		return d.createTransaction(ctx, cmd)
	case ActionCreateAccount:
		return d.createAccount(ctx, cmd)
	case ActionCreateCard:
		return d.createCard(ctx, cmd)
	case ActionCreateGoal:
		return d.createGoal(ctx, cmd)
	case ActionCreateLimit:
		return d.createLimit(ctx, cmd)
	case ActionResetData:
		if err := d.engine.ResetAllData(ctx); err != nil {
			return nil, err
		}
		return &Result{Message: message(cmd, "Todos os dados foram apagados.")}, nil
	case ActionQuery, ActionError:
		return &Result{Message: cmd.Message}, nil
	}
	return nil, fmt.Errorf("%w: unknown assistant action %q", common.ErrValidation, cmd.Action)
}

func (d *Dispatcher) createTransaction(ctx context.Context, cmd Command) (*Result, error) {
	var p TransactionPayload
	if err := decode(cmd.Data, &p); err != nil {
		return nil, err
	}

	txnType := model.TransactionType(p.Type)
	status := model.TransactionStatus(p.Status)
	if status == "" {
		if txnType == model.TransactionTypeIncome {
			status = model.StatusReceived
		} else {
			status = model.StatusPaid
		}
	}
	method := model.PaymentMethod(p.PaymentMethod)
	if method == "" {
		if p.PaymentSource != "" {
			method = model.PaymentMethodAccount
		} else {
			method = model.PaymentMethodCash
		}
	}
	date, err := parseDate(p.Date, d.now())
	if err != nil {
		return nil, err
	}

	txn, err := d.engine.CreateTransaction(ctx, &model.Transaction{
		Title:         p.Title,
		Description:   p.Description,
		Amount:        p.Amount,
		Type:          txnType,
		Category:      cmd.Category,
		Subcategory:   cmd.Subcategory,
		PaymentMethod: method,
		PaymentSource: p.PaymentSource,
		Status:        status,
		Date:          date,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Entity: txn, Message: message(cmd, "Transação criada com sucesso!")}, nil
}

func (d *Dispatcher) createAccount(ctx context.Context, cmd Command) (*Result, error) {
	var p AccountPayload
	if err := decode(cmd.Data, &p); err != nil {
		return nil, err
	}
	account, err := d.engine.CreateAccount(ctx, &model.Account{
		Name:    p.Name,
		Balance: p.InitialBalance,
		Type:    model.AccountType(p.AccountType),
		Bank:    p.BankName,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Entity: account, Message: message(cmd, "Conta criada com sucesso!")}, nil
}

func (d *Dispatcher) createCard(ctx context.Context, cmd Command) (*Result, error) {
	var p CardPayload
	if err := decode(cmd.Data, &p); err != nil {
		return nil, err
	}
	creditLimit := p.CreditLimit
	if creditLimit.IsZero() {
		creditLimit = p.Limit
	}
	card, err := d.engine.CreateCard(ctx, &model.Card{
		Name:        p.Name,
		Limit:       creditLimit,
		Used:        p.UsedAmount,
		Bank:        p.BankName,
		DueDate:     p.DueDay,
		ClosingDate: p.ClosingDay,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Entity: card, Message: message(cmd, "Cartão criado com sucesso!")}, nil
}

func (d *Dispatcher) createGoal(ctx context.Context, cmd Command) (*Result, error) {
	var p GoalPayload
	if err := decode(cmd.Data, &p); err != nil {
		return nil, err
	}
	targetDate, err := parseDate(p.TargetDate, d.now().AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}
	goal, err := d.engine.CreateGoal(ctx, &model.Goal{
		Title:               p.Title,
		Description:         p.Description,
		TargetAmount:        p.TargetAmount,
		CurrentAmount:       p.CurrentAmount,
		MonthlyContribution: p.MonthlyContribution,
		TargetDate:          targetDate,
		Category:            firstNonEmpty(p.Category, cmd.Category),
		Priority:            model.GoalPriority(p.Priority),
	})
	if err != nil {
		return nil, err
	}
	return &Result{Entity: goal, Message: message(cmd, "Meta criada com sucesso!")}, nil
}

func (d *Dispatcher) createLimit(ctx context.Context, cmd Command) (*Result, error) {
	var p LimitPayload
	if err := decode(cmd.Data, &p); err != nil {
		return nil, err
	}
	var startDate time.Time
	if p.StartDate != "" {
		var err error
		startDate, err = parseDate(p.StartDate, time.Time{})
		if err != nil {
			return nil, err
		}
	}
	period := model.LimitPeriod(p.Period)
	if period == "" {
		period = model.PeriodMonthly
	}
	lim, err := d.engine.CreateLimit(ctx, &model.Limit{
		Title:          p.Title,
		Category:       firstNonEmpty(p.Category, cmd.Category),
		Subcategory:    firstNonEmpty(p.Subcategory, cmd.Subcategory),
		LimitAmount:    p.LimitAmount,
		Period:         period,
		AlertThreshold: p.AlertThreshold,
		StartDate:      startDate,
		StartType:      model.StartType(p.StartType),
		CurrentAmount:  decimal.Zero,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Entity: lim, Message: message(cmd, "Limite criado com sucesso!")}, nil
}

func decode(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: assistant command has no data", common.ErrValidation)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: malformed assistant data: %v", common.ErrValidation, err)
	}
	return nil
}

func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", common.ErrValidation, value)
	}
	return date, nil
}

func message(cmd Command, fallback string) string {
	if cmd.Message != "" {
		return cmd.Message
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
