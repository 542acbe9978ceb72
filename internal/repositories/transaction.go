package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// TransactionRepository owns the transaction log: record creation, status
// advancement, and recent-activity reads.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts the transaction with status Initiated and appends the
// initiated date entry, all within the caller's transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (
			transaction_id, amount, description, transaction_type, payment_method, internal,
			status, completed, notified,
			sender_user_id, sender_username, sender_account_id, sender_account_number, sender_account_type,
			receiver_user_id, receiver_username, receiver_account_id, receiver_account_number, receiver_account_type,
			created_at
		) VALUES (
			:transaction_id, :amount, :description, :transaction_type, :payment_method, :internal,
			:status, :completed, :notified,
			:sender_user_id, :sender_username, :sender_account_id, :sender_account_number, :sender_account_type,
			:receiver_user_id, :receiver_username, :receiver_account_id, :receiver_account_number, :receiver_account_type,
			:created_at
		)
	`

	_, err := tx.NamedExecContext(ctx, query, txn)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.Amount, txn.Type},
		"error", err,
	)

	if err != nil {
		return err
	}

	return r.appendDate(ctx, tx, txn.TransactionID, models.TransactionDateTypeInitiated, txn.CreatedAt)
}

// Advance moves the transaction to the given status, sets the matching
// boolean flag, and appends a dated entry. Only Completed and Notified are
// valid targets; anything else is a programming error.
func (r *TransactionRepository) Advance(ctx context.Context, tx *sqlx.Tx, transactionID uuid.UUID, status models.TransactionStatus, at time.Time) error {
	var query string
	var dateType models.TransactionDateType

	switch status {
	case models.TransactionStatusCompleted:
		query = `UPDATE transactions SET status = $2, completed = TRUE WHERE transaction_id = $1`
		dateType = models.TransactionDateTypeCompleted
	case models.TransactionStatusNotified:
		query = `UPDATE transactions SET status = $2, notified = TRUE WHERE transaction_id = $1`
		dateType = models.TransactionDateTypeNotified
	default:
		return fmt.Errorf("transaction %s cannot be advanced to status %q", transactionID, status)
	}

	res, err := tx.ExecContext(ctx, query, transactionID, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, status},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction %s not found", transactionID)
	}

	return r.appendDate(ctx, tx, transactionID, dateType, at)
}

func (r *TransactionRepository) appendDate(ctx context.Context, tx *sqlx.Tx, transactionID uuid.UUID, dateType models.TransactionDateType, at time.Time) error {
	const query = `
		INSERT INTO transaction_dates (transaction_id, date_type, recorded_at)
		VALUES ($1, $2, $3)
	`

	_, err := tx.ExecContext(ctx, query, transactionID, dateType, at)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID, dateType, at},
		"error", err,
	)

	return err
}

// ListRecentByUserID returns the user's indexed transactions, newest first.
func (r *TransactionRepository) ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT t.transaction_id, t.amount, t.description, t.transaction_type, t.payment_method, t.internal,
		       t.status, t.completed, t.notified,
		       t.sender_user_id, t.sender_username, t.sender_account_id, t.sender_account_number, t.sender_account_type,
		       t.receiver_user_id, t.receiver_username, t.receiver_account_id, t.receiver_account_number, t.receiver_account_type,
		       t.created_at
		FROM transactions t
		JOIN recent_transactions rt ON rt.transaction_id = t.transaction_id
		WHERE rt.user_id = $1
		ORDER BY rt.recorded_at DESC, t.created_at DESC
		LIMIT $2
	`

	var transactions []models.TransactionDB
	err := r.db.SelectContext(ctx, &transactions, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(transactions),
		"error", err,
	)

	return transactions, err
}
