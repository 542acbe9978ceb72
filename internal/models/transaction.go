package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus advances monotonically: Initiated -> Completed -> Notified.
type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "Initiated"
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusNotified  TransactionStatus = "Notified"
)

// TransactionType distinguishes plain transfers from digital payments.
type TransactionType string

const (
	TransactionTypeAccountTransfer TransactionType = "AccountTransfer"
	TransactionTypeDigitalPayment  TransactionType = "DigitalPayment"
)

// TransactionDateType tags each entry of the append-only transaction date log.
type TransactionDateType string

const (
	TransactionDateTypeInitiated TransactionDateType = "TransactionInitiatedDate"
	TransactionDateTypeCompleted TransactionDateType = "TransactionCompletedDate"
	TransactionDateTypeNotified  TransactionDateType = "TransactionNotifiedDate"
)

// TransactionDB represents a transaction record in the database.
// Sender and receiver fields are an immutable snapshot of both parties
// captured at transfer time.
type TransactionDB struct {
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	Description   string            `json:"description" db:"description"`
	Type          TransactionType   `json:"transaction_type" db:"transaction_type"`
	PaymentMethod *string           `json:"payment_method,omitempty" db:"payment_method"` // Set iff Type is DigitalPayment
	Internal      bool              `json:"internal" db:"internal"`                       // Same user, different accounts
	Status        TransactionStatus `json:"status" db:"status"`
	Completed     bool              `json:"completed" db:"completed"`
	Notified      bool              `json:"notified" db:"notified"`

	SenderUserID        uuid.UUID `json:"sender_user_id" db:"sender_user_id"`
	SenderUsername      string    `json:"sender_username" db:"sender_username"`
	SenderAccountID     uuid.UUID `json:"sender_account_id" db:"sender_account_id"`
	SenderAccountNumber string    `json:"sender_account_number" db:"sender_account_number"`
	SenderAccountType   string    `json:"sender_account_type" db:"sender_account_type"`

	ReceiverUserID        uuid.UUID `json:"receiver_user_id" db:"receiver_user_id"`
	ReceiverUsername      string    `json:"receiver_username" db:"receiver_username"`
	ReceiverAccountID     uuid.UUID `json:"receiver_account_id" db:"receiver_account_id"`
	ReceiverAccountNumber string    `json:"receiver_account_number" db:"receiver_account_number"`
	ReceiverAccountType   string    `json:"receiver_account_type" db:"receiver_account_type"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TransactionDateDB is one append-only dated entry per status transition.
type TransactionDateDB struct {
	TransactionID uuid.UUID           `json:"transaction_id" db:"transaction_id"`
	DateType      TransactionDateType `json:"date_type" db:"date_type"`
	RecordedAt    time.Time           `json:"recorded_at" db:"recorded_at"`
}
