package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

const limitColumns = `id, title, category, subcategory, limit_amount, current_amount,
	period, alert_threshold, is_active, created_at, start_date, reset_date, start_type`

// CreateLimit inserts a new spending limit.
func (s *SQLiteStorage) CreateLimit(ctx context.Context, limit *model.Limit) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLimit(limit); err != nil {
		return err
	}

	query := `
		INSERT INTO limits (` + limitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		limit.ID, limit.Title, limit.Category, limit.Subcategory,
		limit.LimitAmount, limit.CurrentAmount, string(limit.Period),
		limit.AlertThreshold, limit.IsActive, limit.CreatedAt,
		limit.StartDate, limit.ResetDate, string(limit.StartType))
	if err != nil {
		return fmt.Errorf("failed to insert limit: %w", err)
	}
	return nil
}

// GetLimit returns the limit with the given id.
func (s *SQLiteStorage) GetLimit(ctx context.Context, id string) (*model.Limit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `SELECT ` + limitColumns + ` FROM limits WHERE id = ?`

	var limit model.Limit
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&limit.ID, &limit.Title, &limit.Category, &limit.Subcategory,
		&limit.LimitAmount, &limit.CurrentAmount, &limit.Period,
		&limit.AlertThreshold, &limit.IsActive, &limit.CreatedAt,
		&limit.StartDate, &limit.ResetDate, &limit.StartType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: limit %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query limit: %w", err)
	}
	return &limit, nil
}

// ListLimits returns all limits ordered by creation time.
func (s *SQLiteStorage) ListLimits(ctx context.Context) ([]model.Limit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + limitColumns + ` FROM limits ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query limits: %w", err)
	}
	defer rows.Close()

	var limits []model.Limit
	for rows.Next() {
		var limit model.Limit
		if err := rows.Scan(
			&limit.ID, &limit.Title, &limit.Category, &limit.Subcategory,
			&limit.LimitAmount, &limit.CurrentAmount, &limit.Period,
			&limit.AlertThreshold, &limit.IsActive, &limit.CreatedAt,
			&limit.StartDate, &limit.ResetDate, &limit.StartType); err != nil {
			return nil, fmt.Errorf("failed to scan limit: %w", err)
		}
		limits = append(limits, limit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating limits: %w", err)
	}
	return limits, nil
}

// SaveLimit persists the full limit record.
func (s *SQLiteStorage) SaveLimit(ctx context.Context, limit *model.Limit) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLimit(limit); err != nil {
		return err
	}

	query := `
		UPDATE limits
		SET title = ?, category = ?, subcategory = ?, limit_amount = ?,
			current_amount = ?, period = ?, alert_threshold = ?, is_active = ?,
			start_date = ?, reset_date = ?, start_type = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		limit.Title, limit.Category, limit.Subcategory, limit.LimitAmount,
		limit.CurrentAmount, string(limit.Period), limit.AlertThreshold,
		limit.IsActive, limit.StartDate, limit.ResetDate, string(limit.StartType),
		limit.ID)
	if err != nil {
		return fmt.Errorf("failed to update limit: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: limit %s", common.ErrNotFound, limit.ID)
	}
	return nil
}
