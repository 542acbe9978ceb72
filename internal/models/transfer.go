package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest carries everything needed to move funds between two
// accounts, including the caller's claimed view of both parties. The claimed
// values are verified against stored state before any money moves.
type TransferRequest struct {
	SenderAccountID   uuid.UUID
	ReceiverAccountID uuid.UUID
	Amount            decimal.Decimal
	Type              TransactionType
	Description       string
	PaymentMethod     string

	SenderUserID        uuid.UUID
	SenderUsername      string
	SenderAccountNumber string
	SenderAccountType   string

	ReceiverUserID        uuid.UUID
	ReceiverUsername      string
	ReceiverAccountNumber string
	ReceiverAccountType   string
}

// SameAccount reports whether the request targets the identical account on
// both sides. Such a transfer is always rejected.
func (r TransferRequest) SameAccount() bool {
	return r.SenderUsername == r.ReceiverUsername &&
		r.SenderAccountNumber == r.ReceiverAccountNumber
}

// Internal reports whether the transfer moves funds between two accounts of
// the same user.
func (r TransferRequest) Internal() bool {
	return r.SenderUsername == r.ReceiverUsername &&
		r.SenderAccountNumber != r.ReceiverAccountNumber
}

// TransferEvent is the message published to Kafka after a transfer commits.
type TransferEvent struct {
	TransactionID  string          `json:"transaction_id"` // Unique identifier of the committed transaction
	Timestamp      int64           `json:"timestamp"`      // Unix timestamp (in seconds) of the commit
	Amount         decimal.Decimal `json:"amount"`         // Transferred amount
	Operation      string          `json:"operation"`      // AccountTransfer or DigitalPayment
	Internal       bool            `json:"internal"`       // Whether both accounts belong to one user
	SenderUserID   string          `json:"sender_user_id"`
	ReceiverUserID string          `json:"receiver_user_id"`
}
