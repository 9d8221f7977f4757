package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

const goalColumns = `id, title, description, image_url, target_amount, current_amount,
	monthly_contribution, target_date, category, priority, status, created_at,
	estimated_months, is_realistic, ai_suggestion`

// CreateGoal inserts a new goal.
func (s *SQLiteStorage) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		goal.ID, goal.Title, goal.Description, goal.ImageURL,
		goal.TargetAmount, goal.CurrentAmount, goal.MonthlyContribution,
		goal.TargetDate, goal.Category, string(goal.Priority), string(goal.Status),
		goal.CreatedAt, goal.EstimatedMonths, goal.IsRealistic, goal.AISuggestion)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// GetGoal returns the goal with the given id.
func (s *SQLiteStorage) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`

	var goal model.Goal
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&goal.ID, &goal.Title, &goal.Description, &goal.ImageURL,
		&goal.TargetAmount, &goal.CurrentAmount, &goal.MonthlyContribution,
		&goal.TargetDate, &goal.Category, &goal.Priority, &goal.Status,
		&goal.CreatedAt, &goal.EstimatedMonths, &goal.IsRealistic, &goal.AISuggestion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: goal %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goal: %w", err)
	}
	return &goal, nil
}

// ListGoals returns all goals ordered by creation time.
func (s *SQLiteStorage) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		var goal model.Goal
		if err := rows.Scan(
			&goal.ID, &goal.Title, &goal.Description, &goal.ImageURL,
			&goal.TargetAmount, &goal.CurrentAmount, &goal.MonthlyContribution,
			&goal.TargetDate, &goal.Category, &goal.Priority, &goal.Status,
			&goal.CreatedAt, &goal.EstimatedMonths, &goal.IsRealistic, &goal.AISuggestion); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}
	return goals, nil
}

// SaveGoal persists the full goal record.
func (s *SQLiteStorage) SaveGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	query := `
		UPDATE goals
		SET title = ?, description = ?, image_url = ?, target_amount = ?,
			current_amount = ?, monthly_contribution = ?, target_date = ?,
			category = ?, priority = ?, status = ?, estimated_months = ?,
			is_realistic = ?, ai_suggestion = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		goal.Title, goal.Description, goal.ImageURL, goal.TargetAmount,
		goal.CurrentAmount, goal.MonthlyContribution, goal.TargetDate,
		goal.Category, string(goal.Priority), string(goal.Status),
		goal.EstimatedMonths, goal.IsRealistic, goal.AISuggestion, goal.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: goal %s", common.ErrNotFound, goal.ID)
	}
	return nil
}
