package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

// CreateCustomCategory inserts a user-defined category and its subcategories.
func (s *SQLiteStorage) CreateCustomCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO custom_categories (id, name, icon, type) VALUES (?, ?, ?, ?)`,
		category.ID, category.Name, category.Icon, string(category.Type)); err != nil {
		return fmt.Errorf("failed to insert custom category: %w", err)
	}

	for _, sub := range category.Subcategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO custom_subcategories (id, category_id, name, icon) VALUES (?, ?, ?, ?)`,
			sub.ID, category.ID, sub.Name, sub.Icon); err != nil {
			return fmt.Errorf("failed to insert custom subcategory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit custom category: %w", err)
	}

	slog.Info("created custom category", "id", category.ID, "name", category.Name)
	return nil
}

// ListCustomCategories returns all user-defined categories with their
// subcategories.
func (s *SQLiteStorage) ListCustomCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon, type FROM custom_categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	index := make(map[string]int)
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Type); err != nil {
			return nil, fmt.Errorf("failed to scan custom category: %w", err)
		}
		index[cat.ID] = len(categories)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating custom categories: %w", err)
	}

	subRows, err := s.db.QueryContext(ctx,
		`SELECT id, category_id, name, icon FROM custom_subcategories`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom subcategories: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		var sub model.SubCategory
		var categoryID string
		if err := subRows.Scan(&sub.ID, &categoryID, &sub.Name, &sub.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan custom subcategory: %w", err)
		}
		if i, ok := index[categoryID]; ok {
			categories[i].Subcategories = append(categories[i].Subcategories, sub)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating custom subcategories: %w", err)
	}

	return categories, nil
}

// SaveCustomCategory replaces a user-defined category and its subcategories.
func (s *SQLiteStorage) SaveCustomCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE custom_categories SET name = ?, icon = ?, type = ? WHERE id = ?`,
		category.Name, category.Icon, string(category.Type), category.ID)
	if err != nil {
		return fmt.Errorf("failed to update custom category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: custom category %s", common.ErrNotFound, category.ID)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM custom_subcategories WHERE category_id = ?`, category.ID); err != nil {
		return fmt.Errorf("failed to clear custom subcategories: %w", err)
	}
	for _, sub := range category.Subcategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO custom_subcategories (id, category_id, name, icon) VALUES (?, ?, ?, ?)`,
			sub.ID, category.ID, sub.Name, sub.Icon); err != nil {
			return fmt.Errorf("failed to insert custom subcategory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit custom category: %w", err)
	}
	return nil
}
