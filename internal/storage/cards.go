package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

// CreateCard inserts a new card.
func (s *SQLiteStorage) CreateCard(ctx context.Context, card *model.Card) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCard(card); err != nil {
		return err
	}

	query := `
		INSERT INTO cards (id, name, credit_limit, used, type, bank, due_date, closing_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		card.ID, card.Name, card.Limit, card.Used, string(card.Type),
		card.Bank, card.DueDate, card.ClosingDate)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}
	return nil
}

// GetCard returns the card with the given id.
func (s *SQLiteStorage) GetCard(ctx context.Context, id string) (*model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, credit_limit, used, type, bank, due_date, closing_date
		FROM cards WHERE id = ?`

	var card model.Card
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.Name, &card.Limit, &card.Used, &card.Type,
		&card.Bank, &card.DueDate, &card.ClosingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: card %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query card: %w", err)
	}
	return &card, nil
}

// ListCards returns all cards ordered by name.
func (s *SQLiteStorage) ListCards(ctx context.Context) ([]model.Card, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, credit_limit, used, type, bank, due_date, closing_date
		FROM cards ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		if err := rows.Scan(&card.ID, &card.Name, &card.Limit, &card.Used, &card.Type,
			&card.Bank, &card.DueDate, &card.ClosingDate); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}
	return cards, nil
}

// SaveCard persists the full card record.
func (s *SQLiteStorage) SaveCard(ctx context.Context, card *model.Card) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCard(card); err != nil {
		return err
	}

	query := `
		UPDATE cards
		SET name = ?, credit_limit = ?, used = ?, type = ?, bank = ?, due_date = ?, closing_date = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		card.Name, card.Limit, card.Used, string(card.Type),
		card.Bank, card.DueDate, card.ClosingDate, card.ID)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: card %s", common.ErrNotFound, card.ID)
	}
	return nil
}
