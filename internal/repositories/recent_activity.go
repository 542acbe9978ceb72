package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// RecentActivityRepository maintains the bounded per-user index of
// transaction references. The cap is enforced with an explicit evict-oldest
// statement in the same transaction as the insert.
type RecentActivityRepository struct {
	db *sqlx.DB
}

func NewRecentActivityRepository(db *sqlx.DB) *RecentActivityRepository {
	return &RecentActivityRepository{db: db}
}

// Record appends a transaction reference for the user and evicts everything
// beyond the newest MaxRecentTransactions entries.
func (r *RecentActivityRepository) Record(ctx context.Context, tx *sqlx.Tx, userID, transactionID uuid.UUID, at time.Time) error {
	const insertQuery = `
		INSERT INTO recent_transactions (user_id, transaction_id, recorded_at)
		VALUES ($1, $2, $3)
	`

	_, err := tx.ExecContext(ctx, insertQuery, userID, transactionID, at)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{userID, transactionID, at},
		"error", err,
	)

	if err != nil {
		return err
	}

	const evictQuery = `
		DELETE FROM recent_transactions
		WHERE user_id = $1
		  AND transaction_id NOT IN (
			SELECT transaction_id
			FROM recent_transactions
			WHERE user_id = $1
			ORDER BY recorded_at DESC, transaction_id
			LIMIT $2
		  )
	`

	res, err := tx.ExecContext(ctx, evictQuery, userID, models.MaxRecentTransactions)
	var evicted int64
	if res != nil {
		evicted, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(evictQuery), " "),
		"args", []any{userID, models.MaxRecentTransactions},
		"result", evicted,
		"error", err,
	)

	return err
}
