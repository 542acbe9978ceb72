package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// NotificationRepository persists transfer notifications.
type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Save inserts the notification batch within the caller's transaction.
func (r *NotificationRepository) Save(ctx context.Context, tx *sqlx.Tx, notifications []models.NotificationDB) error {
	if len(notifications) == 0 {
		return nil
	}

	const query = `
		INSERT INTO notifications (
			notification_id, event, message, user_id, username, transaction_id,
			sender_account_number, receiver_account_number, created_at
		) VALUES (
			:notification_id, :event, :message, :user_id, :username, :transaction_id,
			:sender_account_number, :receiver_account_number, :created_at
		)
	`

	_, err := tx.NamedExecContext(ctx, query, notifications)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", len(notifications),
		"error", err,
	)

	return err
}
