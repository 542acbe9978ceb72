package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent is the taxonomy of notification kinds a transfer can emit.
type NotificationEvent string

const (
	NotificationEventTransferSent     NotificationEvent = "TransferSent"
	NotificationEventTransferReceived NotificationEvent = "TransferReceived"
	NotificationEventPaymentMade      NotificationEvent = "PaymentMade"
	NotificationEventPaymentReceived  NotificationEvent = "PaymentReceived"
	NotificationEventInternalTransfer NotificationEvent = "InternalTransfer"
)

// NotificationDB represents a notification record in the database.
// Created once per addressed user, never mutated.
type NotificationDB struct {
	NotificationID        uuid.UUID         `json:"notification_id" db:"notification_id"`
	Event                 NotificationEvent `json:"event" db:"event"`
	Message               string            `json:"message" db:"message"`
	UserID                uuid.UUID         `json:"user_id" db:"user_id"`
	Username              string            `json:"username" db:"username"`
	TransactionID         uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	SenderAccountNumber   string            `json:"sender_account_number" db:"sender_account_number"`
	ReceiverAccountNumber string            `json:"receiver_account_number" db:"receiver_account_number"`
	CreatedAt             time.Time         `json:"created_at" db:"created_at"`
}
