package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		account_number VARCHAR(20) NOT NULL UNIQUE,
		account_type VARCHAR(20) NOT NULL,
		currency CHAR(3) NOT NULL,
		balance NUMERIC(20,2) NOT NULL,
		status VARCHAR(10) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS transactions (
		transaction_id UUID PRIMARY KEY,
		amount NUMERIC(20,2) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		transaction_type VARCHAR(20) NOT NULL,
		payment_method VARCHAR(50),
		internal BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(20) NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		notified BOOLEAN NOT NULL DEFAULT FALSE,
		sender_user_id UUID NOT NULL,
		sender_username VARCHAR(50) NOT NULL,
		sender_account_id UUID NOT NULL,
		sender_account_number VARCHAR(20) NOT NULL,
		sender_account_type VARCHAR(20) NOT NULL,
		receiver_user_id UUID NOT NULL,
		receiver_username VARCHAR(50) NOT NULL,
		receiver_account_id UUID NOT NULL,
		receiver_account_number VARCHAR(20) NOT NULL,
		receiver_account_type VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS transaction_dates (
		transaction_id UUID NOT NULL REFERENCES transactions(transaction_id),
		date_type VARCHAR(30) NOT NULL,
		recorded_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recent_transactions (
		user_id UUID NOT NULL,
		transaction_id UUID NOT NULL REFERENCES transactions(transaction_id),
		recorded_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		notification_id UUID PRIMARY KEY,
		event VARCHAR(30) NOT NULL,
		message TEXT NOT NULL,
		user_id UUID NOT NULL,
		username VARCHAR(50) NOT NULL,
		transaction_id UUID NOT NULL REFERENCES transactions(transaction_id),
		sender_account_number VARCHAR(20) NOT NULL,
		receiver_account_number VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertTestAccount(t *testing.T, db *sqlx.DB, number string, balance int64) *models.AccountDB {
	t.Helper()

	account := &models.AccountDB{
		AccountID:     uuid.New(),
		UserID:        uuid.New(),
		AccountNumber: number,
		AccountType:   "Checking",
		Currency:      "USD",
		Balance:       decimal.NewFromInt(balance),
		Status:        models.AccountStatusOpen,
	}

	_, err := db.Exec(
		`INSERT INTO accounts (account_id, user_id, account_number, account_type, currency, balance, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.AccountID, account.UserID, account.AccountNumber, account.AccountType,
		account.Currency, account.Balance, account.Status,
	)
	require.NoError(t, err)

	return account
}

func newTestTransaction(senderUserID, receiverUserID uuid.UUID, at time.Time) *models.TransactionDB {
	return &models.TransactionDB{
		TransactionID: uuid.New(),
		Amount:        decimal.NewFromInt(50),
		Type:          models.TransactionTypeAccountTransfer,
		Status:        models.TransactionStatusInitiated,

		SenderUserID:        senderUserID,
		SenderUsername:      "fridaklo",
		SenderAccountID:     uuid.New(),
		SenderAccountNumber: "1234567890",
		SenderAccountType:   "Checking",

		ReceiverUserID:        receiverUserID,
		ReceiverUsername:      "gracehop",
		ReceiverAccountID:     uuid.New(),
		ReceiverAccountNumber: "9876543210",
		ReceiverAccountType:   "Savings",

		CreatedAt: at,
	}
}

// insertTestTransaction persists a transaction via the repository so the
// initiated date entry comes along with it.
func insertTestTransaction(t *testing.T, db *sqlx.DB, txn *models.TransactionDB) {
	t.Helper()

	ctx := context.Background()
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)

	repo := NewTransactionRepository(db)
	require.NoError(t, repo.Create(ctx, tx, txn))
	require.NoError(t, tx.Commit())
}
