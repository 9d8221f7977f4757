package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/goal"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/Jhonatansales/gestao-financeira/internal/service"
)

// CreateGoal validates the goal, computes its projection and persists it.
func (e *Engine) CreateGoal(ctx context.Context, g *model.Goal) (*model.Goal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	goalCopy := *g
	if goalCopy.Title == "" {
		return nil, fmt.Errorf("%w: goal title is required", common.ErrValidation)
	}
	if !goalCopy.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", common.ErrInvalidAmount)
	}
	if goalCopy.CurrentAmount.IsNegative() || goalCopy.MonthlyContribution.IsNegative() {
		return nil, fmt.Errorf("%w: goal amounts must not be negative", common.ErrInvalidAmount)
	}
	if goalCopy.ID == "" {
		goalCopy.ID = e.newID()
	}
	if goalCopy.Priority == "" {
		goalCopy.Priority = model.PriorityMedium
	}
	if goalCopy.Status == "" {
		goalCopy.Status = model.GoalStatusActive
	}
	if goalCopy.CreatedAt.IsZero() {
		goalCopy.CreatedAt = e.now()
	}
	goalCopy.TargetAmount = round2(goalCopy.TargetAmount)
	goalCopy.CurrentAmount = round2(goalCopy.CurrentAmount)
	goalCopy.MonthlyContribution = round2(goalCopy.MonthlyContribution)
	e.projectGoal(&goalCopy)

	if err := e.store.CreateGoal(ctx, &goalCopy); err != nil {
		return nil, err
	}
	slog.Info("goal created",
		"id", goalCopy.ID, "title", goalCopy.Title,
		"target", goalCopy.TargetAmount, "realistic", goalCopy.IsRealistic)
	return &goalCopy, nil
}

// UpdateGoal merges the partial update, recomputes the projection and
// persists the result.
func (e *Engine) UpdateGoal(ctx context.Context, id string, upd service.GoalUpdate) (*model.Goal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.store.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		g.Title = *upd.Title
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		g.ImageURL = *upd.ImageURL
	}
	if upd.TargetAmount != nil {
		if !upd.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("%w: target amount must be positive", common.ErrInvalidAmount)
		}
		g.TargetAmount = round2(*upd.TargetAmount)
	}
	if upd.CurrentAmount != nil {
		if upd.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: current amount must not be negative", common.ErrInvalidAmount)
		}
		g.CurrentAmount = round2(*upd.CurrentAmount)
	}
	if upd.MonthlyContribution != nil {
		if upd.MonthlyContribution.IsNegative() {
			return nil, fmt.Errorf("%w: monthly contribution must not be negative", common.ErrInvalidAmount)
		}
		g.MonthlyContribution = round2(*upd.MonthlyContribution)
	}
	if upd.TargetDate != nil {
		g.TargetDate = *upd.TargetDate
	}
	if upd.Category != nil {
		g.Category = *upd.Category
	}
	if upd.Priority != nil {
		g.Priority = *upd.Priority
	}
	if upd.Status != nil {
		g.Status = *upd.Status
	}
	e.projectGoal(g)

	if err := e.store.SaveGoal(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// GetGoal returns a single goal with a fresh projection.
func (e *Engine) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	g, err := e.store.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	e.projectGoal(g)
	return g, nil
}

// ListGoals returns all goals with fresh projections. Projections computed on
// read are not written back; they depend on the current date and would churn
// the store.
func (e *Engine) ListGoals(ctx context.Context) ([]model.Goal, error) {
	goals, err := e.store.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		e.projectGoal(&goals[i])
	}
	return goals, nil
}

func (e *Engine) projectGoal(g *model.Goal) {
	p := goal.Project(g.TargetAmount, g.CurrentAmount, g.MonthlyContribution, g.TargetDate, e.now())
	g.EstimatedMonths = p.EstimatedMonths
	g.IsRealistic = p.IsRealistic
	g.AISuggestion = p.Suggestion
}
