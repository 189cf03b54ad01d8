package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elegantbudget/budget-go/internal/model"
)

// TransactionPatch is a whitelisted partial update. Nil fields are left
// untouched by the UPDATE statement.
type TransactionPatch struct {
	Type        *string
	Amount      *float64
	Category    *string
	Description *string
	Date        *time.Time
}

// IsEmpty reports whether the patch carries no fields.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil && p.Category == nil &&
		p.Description == nil && p.Date == nil
}

// TransactionRepository handles transaction persistence. Every lookup,
// update, and delete is predicated on both the transaction id and the
// owning user id, so a non-owner's request is indistinguishable from a
// nonexistent row.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, user_id, type, amount, category, description, date, created_at, updated_at`

func scanTransaction(row interface{ Scan(dest ...any) error }) (*model.Transaction, error) {
	t := &model.Transaction{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category,
		&t.Description, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new transaction owned by txn.UserID and reads back the
// stored row so server-assigned timestamps are returned to the caller.
func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}

	query := `INSERT INTO transactions (id, user_id, type, amount, category, description, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID, txn.UserID, txn.Type, txn.Amount, txn.Category, txn.Description, txn.Date,
	)
	if err != nil {
		if isDataError(err) {
			return ErrInvalidData
		}
		return err
	}

	stored, err := r.GetByID(ctx, txn.ID, txn.UserID)
	if err != nil {
		return err
	}
	*txn = *stored
	return nil
}

// GetByID retrieves a transaction by id, scoped to its owner.
func (r *TransactionRepository) GetByID(ctx context.Context, id, userID string) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ? AND user_id = ?`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return txn, nil
}

// ListByUser retrieves all of a user's transactions, newest date first.
// Rows sharing a date come back in store order; no secondary sort key.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ? ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}

	return txns, rows.Err()
}

// Update applies the patch atomically, scoped by {id, user_id}, and returns
// the updated row. Concurrent updates to the same row are last-write-wins.
func (r *TransactionRepository) Update(ctx context.Context, id, userID string, patch TransactionPatch) (*model.Transaction, error) {
	assignments, args := buildUpdate(patch)
	if len(assignments) == 0 {
		return nil, errors.New("empty patch")
	}

	query := `UPDATE transactions SET ` + strings.Join(assignments, ", ") +
		` WHERE id = ? AND user_id = ?`
	args = append(args, id, userID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isDataError(err) {
			return nil, ErrInvalidData
		}
		return nil, err
	}

	// RowsAffected is 0 for both a missing row and a no-op write, so the
	// owner-scoped read confirms existence and returns the current state.
	return r.GetByID(ctx, id, userID)
}

// Delete removes the transaction matching both ids.
func (r *TransactionRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM transactions WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// buildUpdate translates a patch into SET assignments and their arguments,
// in a fixed column order.
func buildUpdate(patch TransactionPatch) ([]string, []any) {
	var assignments []string
	var args []any

	if patch.Type != nil {
		assignments = append(assignments, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.Amount != nil {
		assignments = append(assignments, "amount = ?")
		args = append(args, *patch.Amount)
	}
	if patch.Category != nil {
		assignments = append(assignments, "category = ?")
		args = append(args, *patch.Category)
	}
	if patch.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Date != nil {
		assignments = append(assignments, "date = ?")
		args = append(args, *patch.Date)
	}

	return assignments, args
}
