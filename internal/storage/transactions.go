package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

const transactionColumns = `id, title, description, user_description, amount, type,
	category, subcategory, payment_method, payment_source, status, date,
	is_recurring, is_installment, installment_current, installment_total,
	transfer_from, transfer_to`

// CreateTransaction inserts a new transaction.
func (s *SQLiteStorage) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, transactionArgs(txn)...)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction returns the transaction with the given id.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	row := s.db.QueryRowContext(ctx, query, id)
	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns all transactions ordered by date descending.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

// SaveTransaction persists the full transaction record.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET title = ?, description = ?, user_description = ?, amount = ?, type = ?,
			category = ?, subcategory = ?, payment_method = ?, payment_source = ?,
			status = ?, date = ?, is_recurring = ?, is_installment = ?,
			installment_current = ?, installment_total = ?, transfer_from = ?, transfer_to = ?
		WHERE id = ?`

	args := transactionArgs(txn)
	// Move id from the front to the WHERE clause.
	args = append(args[1:], args[0])

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, txn.ID)
	}
	return nil
}

func transactionArgs(txn *model.Transaction) []any {
	var instCurrent, instTotal sql.NullInt64
	if txn.Installment != nil {
		instCurrent = sql.NullInt64{Int64: int64(txn.Installment.Current), Valid: true}
		instTotal = sql.NullInt64{Int64: int64(txn.Installment.Total), Valid: true}
	}

	var transferFrom, transferTo string
	if txn.Transfer != nil {
		transferFrom = txn.Transfer.FromAccountID
		transferTo = txn.Transfer.ToAccountID
	}

	return []any{
		txn.ID, txn.Title, txn.Description, txn.UserDescription, txn.Amount,
		string(txn.Type), txn.Category, txn.Subcategory, string(txn.PaymentMethod),
		txn.PaymentSource, string(txn.Status), txn.Date,
		txn.IsRecurring, txn.IsInstallment, instCurrent, instTotal,
		transferFrom, transferTo,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var instCurrent, instTotal sql.NullInt64
	var transferFrom, transferTo string

	err := row.Scan(
		&txn.ID, &txn.Title, &txn.Description, &txn.UserDescription, &txn.Amount,
		&txn.Type, &txn.Category, &txn.Subcategory, &txn.PaymentMethod,
		&txn.PaymentSource, &txn.Status, &txn.Date,
		&txn.IsRecurring, &txn.IsInstallment, &instCurrent, &instTotal,
		&transferFrom, &transferTo,
	)
	if err != nil {
		return nil, err
	}

	if instCurrent.Valid && instTotal.Valid {
		txn.Installment = &model.InstallmentInfo{
			Current: int(instCurrent.Int64),
			Total:   int(instTotal.Int64),
		}
	}
	if transferFrom != "" || transferTo != "" {
		txn.Transfer = &model.TransferInfo{
			FromAccountID: transferFrom,
			ToAccountID:   transferTo,
		}
	}
	return &txn, nil
}
