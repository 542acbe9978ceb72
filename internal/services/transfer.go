package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// maxConflictRetries bounds how often a conflicted transfer is re-executed
// before the failure becomes terminal.
const maxConflictRetries = 3

// AccountLedger reads account snapshots and applies atomic balance deltas.
type AccountLedger interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)                                               // Returns nil if the account does not exist
	AdjustBalance(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, delta decimal.Decimal) (*models.AccountDB, error) // Returns the post-update snapshot
}

// TransactionLog creates transaction records and advances their status.
type TransactionLog interface {
	Create(ctx context.Context, tx *sqlx.Tx, txn *models.TransactionDB) error
	Advance(ctx context.Context, tx *sqlx.Tx, transactionID uuid.UUID, status models.TransactionStatus, at time.Time) error
}

// RecentActivityIndex appends bounded per-user transaction references.
type RecentActivityIndex interface {
	Record(ctx context.Context, tx *sqlx.Tx, userID, transactionID uuid.UUID, at time.Time) error
}

// NotificationWriter persists a notification batch.
type NotificationWriter interface {
	Save(ctx context.Context, tx *sqlx.Tx, notifications []models.NotificationDB) error
}

// UserReader reads user snapshots for validation.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) // Returns nil if the user does not exist
}

// RecentActivityInvalidator drops cached recent-transaction listings.
type RecentActivityInvalidator interface {
	Invalidate(ctx context.Context, userIDs ...uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransferService orchestrates a transfer: precondition validation on fresh
// snapshots, then the whole multi-aggregate state transition inside one
// database transaction, then post-commit event publishing and cache
// invalidation.
type TransferService struct {
	db            *sqlx.DB
	accounts      AccountLedger
	transactions  TransactionLog
	recent        RecentActivityIndex
	notifications NotificationWriter
	users         UserReader
	cache         RecentActivityInvalidator
	kafkaWriter   KafkaWriter
}

// NewTransferService creates a new TransferService. cache and kafkaWriter
// may be nil; both are post-commit conveniences, not part of the transfer.
func NewTransferService(
	db *sqlx.DB,
	accounts AccountLedger,
	transactions TransactionLog,
	recent RecentActivityIndex,
	notifications NotificationWriter,
	users UserReader,
	cache RecentActivityInvalidator,
	kafkaWriter KafkaWriter,
) *TransferService {
	return &TransferService{
		db:            db,
		accounts:      accounts,
		transactions:  transactions,
		recent:        recent,
		notifications: notifications,
		users:         users,
		cache:         cache,
		kafkaWriter:   kafkaWriter,
	}
}

// PerformTransfer moves funds between two accounts with all-or-nothing
// atomicity. It returns the transaction identity on success and uuid.Nil
// with an error on any failure; callers treat every failure uniformly as
// "transfer did not happen".
func (s *TransferService) PerformTransfer(ctx context.Context, req models.TransferRequest) (uuid.UUID, error) {
	senderAccount, err := s.accounts.GetByID(ctx, req.SenderAccountID)
	if err != nil {
		logger.Log.Errorw("failed to read sender account", "account_id", req.SenderAccountID, "error", err)
		return uuid.Nil, err
	}
	receiverAccount, err := s.accounts.GetByID(ctx, req.ReceiverAccountID)
	if err != nil {
		logger.Log.Errorw("failed to read receiver account", "account_id", req.ReceiverAccountID, "error", err)
		return uuid.Nil, err
	}
	senderUser, err := s.users.GetByID(ctx, req.SenderUserID)
	if err != nil {
		logger.Log.Errorw("failed to read sender user", "user_id", req.SenderUserID, "error", err)
		return uuid.Nil, err
	}
	receiverUser, err := s.users.GetByID(ctx, req.ReceiverUserID)
	if err != nil {
		logger.Log.Errorw("failed to read receiver user", "user_id", req.ReceiverUserID, "error", err)
		return uuid.Nil, err
	}

	if err := ValidateTransfer(req, senderAccount, receiverAccount, senderUser, receiverUser); err != nil {
		logger.Log.Warnw("transfer rejected", "error", err,
			"sender_account", req.SenderAccountNumber, "receiver_account", req.ReceiverAccountNumber)
		return uuid.Nil, err
	}

	var transactionID uuid.UUID
	for attempt := 1; ; attempt++ {
		transactionID, err = s.execute(ctx, req)
		if err == nil {
			break
		}
		if !isRetryableConflict(err) || attempt >= maxConflictRetries {
			logger.Log.Errorw("transfer failed", "attempt", attempt, "error", err)
			return uuid.Nil, err
		}
		logger.Log.Warnw("transfer conflicted, retrying", "attempt", attempt, "error", err)
	}

	logger.Log.Infow("transfer committed",
		"transaction_id", transactionID,
		"amount", req.Amount,
		"internal", req.Internal(),
	)

	s.publishTransferEvent(ctx, transactionID, req)
	s.invalidateRecent(ctx, req)

	return transactionID, nil
}

// execute runs one attempt of the transfer inside a single transaction.
// Every write is threaded through the same *sqlx.Tx; any failure rolls the
// whole attempt back.
func (s *TransferService) execute(ctx context.Context, req models.TransferRequest) (uuid.UUID, error) {
	// Guard repeated here so the invariant holds even for callers that skip
	// ValidateTransfer.
	if req.SameAccount() {
		return uuid.Nil, ErrSameAccount
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	internal := req.Internal()

	senderAfter, err := s.accounts.AdjustBalance(ctx, tx, req.SenderAccountID, req.Amount.Neg())
	if err != nil {
		return uuid.Nil, err
	}
	receiverAfter, err := s.accounts.AdjustBalance(ctx, tx, req.ReceiverAccountID, req.Amount)
	if err != nil {
		return uuid.Nil, err
	}

	txn := newTransactionRecord(req, internal, now)
	if err := s.transactions.Create(ctx, tx, txn); err != nil {
		return uuid.Nil, err
	}
	if err := s.transactions.Advance(ctx, tx, txn.TransactionID, models.TransactionStatusCompleted, now); err != nil {
		return uuid.Nil, err
	}

	if err := s.recent.Record(ctx, tx, req.SenderUserID, txn.TransactionID, now); err != nil {
		return uuid.Nil, err
	}
	if !internal {
		if err := s.recent.Record(ctx, tx, req.ReceiverUserID, txn.TransactionID, now); err != nil {
			return uuid.Nil, err
		}
	}

	notifications := buildNotifications(req, txn.TransactionID, senderAfter, receiverAfter, now)
	if err := s.notifications.Save(ctx, tx, notifications); err != nil {
		return uuid.Nil, err
	}

	if err := s.transactions.Advance(ctx, tx, txn.TransactionID, models.TransactionStatusNotified, now); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return txn.TransactionID, nil
}

// newTransactionRecord builds the immutable transaction snapshot in its
// initial state.
func newTransactionRecord(req models.TransferRequest, internal bool, at time.Time) *models.TransactionDB {
	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		Amount:        req.Amount,
		Description:   req.Description,
		Type:          req.Type,
		Internal:      internal,
		Status:        models.TransactionStatusInitiated,

		SenderUserID:        req.SenderUserID,
		SenderUsername:      req.SenderUsername,
		SenderAccountID:     req.SenderAccountID,
		SenderAccountNumber: req.SenderAccountNumber,
		SenderAccountType:   req.SenderAccountType,

		ReceiverUserID:        req.ReceiverUserID,
		ReceiverUsername:      req.ReceiverUsername,
		ReceiverAccountID:     req.ReceiverAccountID,
		ReceiverAccountNumber: req.ReceiverAccountNumber,
		ReceiverAccountType:   req.ReceiverAccountType,

		CreatedAt: at,
	}
	if req.Type == models.TransactionTypeDigitalPayment {
		method := req.PaymentMethod
		txn.PaymentMethod = &method
	}
	return txn
}

// isRetryableConflict reports whether the error is a Postgres serialization
// or deadlock failure, the only class the executor retries.
func isRetryableConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// publishTransferEvent publishes a committed transfer to Kafka, best effort.
func (s *TransferService) publishTransferEvent(ctx context.Context, transactionID uuid.UUID, req models.TransferRequest) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", transactionID)
		return
	}

	event := models.TransferEvent{
		TransactionID:  transactionID.String(),
		Timestamp:      time.Now().Unix(),
		Amount:         req.Amount,
		Operation:      string(req.Type),
		Internal:       req.Internal(),
		SenderUserID:   req.SenderUserID.String(),
		ReceiverUserID: req.ReceiverUserID.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transfer event for Kafka", "transaction_id", transactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transfer event to Kafka", "transaction_id", transactionID, "error", err)
	} else {
		logger.Log.Infow("Transfer event published to Kafka", "transaction_id", transactionID, "amount", req.Amount)
	}
}

// invalidateRecent drops cached listings of every user the transfer touched.
func (s *TransferService) invalidateRecent(ctx context.Context, req models.TransferRequest) {
	if s.cache == nil {
		return
	}

	userIDs := []uuid.UUID{req.SenderUserID}
	if req.ReceiverUserID != req.SenderUserID {
		userIDs = append(userIDs, req.ReceiverUserID)
	}

	if err := s.cache.Invalidate(ctx, userIDs...); err != nil {
		logger.Log.Errorw("failed to invalidate recent transactions cache", "error", err)
	}
}
