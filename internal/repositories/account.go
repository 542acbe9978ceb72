package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// AccountRepository handles account reads and atomic balance adjustments.
type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetByID returns the account snapshot, or nil if no such account exists.
func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, user_id, account_number, account_type, currency, balance, status, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AdjustBalance applies a signed delta to the account balance as part of the
// caller's transaction and returns the post-update snapshot.
func (r *AccountRepository) AdjustBalance(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, delta decimal.Decimal) (*models.AccountDB, error) {
	const query = `
		UPDATE accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE account_id = $1
		RETURNING account_id, user_id, account_number, account_type, currency, balance, status, created_at, updated_at
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, tx, &account, query, accountID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, delta},
		"result", account,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}
