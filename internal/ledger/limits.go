package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/limit"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
)

// CreateLimit validates the limit, anchors its accrual window and persists
// it. New limits start active with nothing accrued.
func (e *Engine) CreateLimit(ctx context.Context, l *model.Limit) (*model.Limit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	lim := *l
	if lim.Title == "" {
		return nil, fmt.Errorf("%w: limit title is required", common.ErrValidation)
	}
	if !lim.LimitAmount.IsPositive() {
		return nil, fmt.Errorf("%w: limit amount must be positive", common.ErrInvalidAmount)
	}
	if lim.Category == "" {
		return nil, fmt.Errorf("%w: limit category is required", common.ErrValidation)
	}
	if err := e.validateCategory(ctx, lim.Category, lim.Subcategory); err != nil {
		return nil, err
	}
	if err := validatePeriod(lim.Period); err != nil {
		return nil, err
	}
	if lim.AlertThreshold == 0 {
		lim.AlertThreshold = 80
	}
	if lim.AlertThreshold < 1 || lim.AlertThreshold > 100 {
		return nil, fmt.Errorf("%w: alert threshold must be between 1 and 100", common.ErrValidation)
	}
	if lim.ID == "" {
		lim.ID = e.newID()
	}
	if lim.StartType == "" {
		lim.StartType = model.StartToday
	}
	if lim.StartDate.IsZero() {
		lim.StartDate = limit.StartDateFor(lim.StartType, e.now())
	}
	if lim.CreatedAt.IsZero() {
		lim.CreatedAt = e.now()
	}
	lim.ResetDate = limit.NextResetDate(lim.StartDate, lim.Period)
	lim.LimitAmount = round2(lim.LimitAmount)
	lim.CurrentAmount = round2(lim.CurrentAmount)
	lim.IsActive = true

	if err := e.store.CreateLimit(ctx, &lim); err != nil {
		return nil, err
	}
	slog.Info("limit created",
		"id", lim.ID, "category", lim.Category,
		"amount", lim.LimitAmount, "period", lim.Period)
	return &lim, nil
}

// UpdateLimit merges the partial update and persists the result. Changing the
// period, start date or start type re-derives the reset date.
func (e *Engine) UpdateLimit(ctx context.Context, id string, upd service.LimitUpdate) (*model.Limit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	lim, err := e.store.GetLimit(ctx, id)
	if err != nil {
		return nil, err
	}
	rederive := false
	if upd.Title != nil {
		lim.Title = *upd.Title
	}
	if upd.Category != nil {
		lim.Category = *upd.Category
	}
	if upd.Subcategory != nil {
		lim.Subcategory = *upd.Subcategory
	}
	if upd.Category != nil || upd.Subcategory != nil {
		if err := e.validateCategory(ctx, lim.Category, lim.Subcategory); err != nil {
			return nil, err
		}
	}
	if upd.LimitAmount != nil {
		if !upd.LimitAmount.IsPositive() {
			return nil, fmt.Errorf("%w: limit amount must be positive", common.ErrInvalidAmount)
		}
		lim.LimitAmount = round2(*upd.LimitAmount)
	}
	if upd.Period != nil {
		if err := validatePeriod(*upd.Period); err != nil {
			return nil, err
		}
		lim.Period = *upd.Period
		rederive = true
	}
	if upd.AlertThreshold != nil {
		if *upd.AlertThreshold < 1 || *upd.AlertThreshold > 100 {
			return nil, fmt.Errorf("%w: alert threshold must be between 1 and 100", common.ErrValidation)
		}
		lim.AlertThreshold = *upd.AlertThreshold
	}
	if upd.IsActive != nil {
		lim.IsActive = *upd.IsActive
	}
	if upd.StartType != nil {
		lim.StartType = *upd.StartType
		if upd.StartDate == nil {
			lim.StartDate = limit.StartDateFor(lim.StartType, e.now())
		}
		rederive = true
	}
	if upd.StartDate != nil {
		lim.StartDate = *upd.StartDate
		rederive = true
	}
	if rederive {
		lim.ResetDate = limit.NextResetDate(lim.StartDate, lim.Period)
	}

	if err := e.store.SaveLimit(ctx, lim); err != nil {
		return nil, err
	}
	return lim, nil
}

// GetLimit returns a single limit, rolled over into its current accrual
// window if its reset date has passed.
func (e *Engine) GetLimit(ctx context.Context, id string) (*model.Limit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	lim, err := e.store.GetLimit(ctx, id)
	if err != nil {
		return nil, err
	}
	if limit.Rollover(lim, e.now()) {
		if err := e.store.SaveLimit(ctx, lim); err != nil {
			return nil, err
		}
	}
	return lim, nil
}

// ListLimits returns all limits, rolling over any whose reset date has
// passed.
func (e *Engine) ListLimits(ctx context.Context) ([]model.Limit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rolloverLimits(ctx)
}

// RolloverLimits advances every expired limit into its current accrual
// window. Intended for the periodic scheduler; reads roll over lazily anyway.
func (e *Engine) RolloverLimits(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.rolloverLimits(ctx)
	return err
}

func (e *Engine) rolloverLimits(ctx context.Context) ([]model.Limit, error) {
	limits, err := e.store.ListLimits(ctx)
	if err != nil {
		return nil, err
	}
	now := e.now()
	for i := range limits {
		if limit.Rollover(&limits[i], now) {
			if err := e.store.SaveLimit(ctx, &limits[i]); err != nil {
				return nil, err
			}
			slog.Info("limit rolled over",
				"id", limits[i].ID, "category", limits[i].Category,
				"resetDate", limits[i].ResetDate)
		}
	}
	return limits, nil
}

func validatePeriod(p model.LimitPeriod) error {
	switch p {
	case model.PeriodBiweekly, model.PeriodMonthly, model.PeriodBimonthly,
		model.PeriodQuarterly, model.PeriodSemiannual, model.PeriodAnnual:
		return nil
	}
	return fmt.Errorf("%w: unknown limit period %q", common.ErrValidation, p)
}
