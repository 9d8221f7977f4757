package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS accounts (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					balance TEXT NOT NULL,
					type TEXT NOT NULL,
					bank TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS cards (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					credit_limit TEXT NOT NULL,
					used TEXT NOT NULL,
					type TEXT NOT NULL,
					bank TEXT,
					due_date INTEGER,
					closing_date INTEGER,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					description TEXT,
					user_description TEXT,
					amount TEXT NOT NULL,
					type TEXT NOT NULL,
					category TEXT NOT NULL,
					subcategory TEXT,
					payment_method TEXT NOT NULL,
					payment_source TEXT,
					status TEXT NOT NULL,
					date DATETIME NOT NULL,
					is_recurring INTEGER DEFAULT 0,
					is_installment INTEGER DEFAULT 0,
					installment_current INTEGER,
					installment_total INTEGER,
					transfer_from TEXT,
					transfer_to TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category)`,

				`CREATE TABLE IF NOT EXISTS goals (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					description TEXT,
					image_url TEXT,
					target_amount TEXT NOT NULL,
					current_amount TEXT NOT NULL,
					monthly_contribution TEXT NOT NULL,
					target_date DATETIME NOT NULL,
					category TEXT NOT NULL,
					priority TEXT NOT NULL,
					status TEXT NOT NULL,
					created_at DATETIME NOT NULL,
					estimated_months INTEGER DEFAULT 0,
					is_realistic INTEGER DEFAULT 1,
					ai_suggestion TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS limits (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					category TEXT NOT NULL,
					subcategory TEXT,
					limit_amount TEXT NOT NULL,
					current_amount TEXT NOT NULL,
					period TEXT NOT NULL,
					alert_threshold INTEGER NOT NULL,
					is_active INTEGER DEFAULT 1,
					created_at DATETIME NOT NULL,
					start_date DATETIME NOT NULL,
					reset_date DATETIME NOT NULL,
					start_type TEXT NOT NULL
				)`,
				`CREATE INDEX idx_limits_category ON limits(category)`,

				`CREATE TABLE IF NOT EXISTS custom_categories (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					icon TEXT NOT NULL,
					type TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS custom_subcategories (
					id TEXT PRIMARY KEY,
					category_id TEXT NOT NULL,
					name TEXT NOT NULL,
					icon TEXT NOT NULL,
					FOREIGN KEY (category_id) REFERENCES custom_categories(id)
				)`,
				`CREATE INDEX idx_custom_subcategories_category ON custom_subcategories(category_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		description TEXT
	)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	current, err := s.currentSchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_versions (version, description) VALUES (?, ?)`,
			m.Version, m.Description,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}

func (s *SQLiteStorage) currentSchemaVersion(ctx context.Context) (int, error) {
	var version sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_versions`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
