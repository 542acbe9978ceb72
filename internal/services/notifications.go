package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// buildNotifications derives the notification fan-out of a completed
// transfer: one notification for an internal transfer, two otherwise. The
// post-adjustment snapshots supply the balances quoted in the messages.
func buildNotifications(req models.TransferRequest, transactionID uuid.UUID, senderAfter, receiverAfter *models.AccountDB, at time.Time) []models.NotificationDB {
	base := models.NotificationDB{
		TransactionID:         transactionID,
		SenderAccountNumber:   req.SenderAccountNumber,
		ReceiverAccountNumber: req.ReceiverAccountNumber,
		CreatedAt:             at,
	}

	if req.Internal() {
		internal := base
		internal.NotificationID = uuid.New()
		internal.Event = models.NotificationEventInternalTransfer
		internal.UserID = req.SenderUserID
		internal.Username = req.SenderUsername
		internal.Message = fmt.Sprintf(
			"You have moved %s %s from account %s to account %s. Your new balance on account %s is %s %s.",
			senderAfter.Currency, req.Amount,
			req.SenderAccountNumber, req.ReceiverAccountNumber,
			req.ReceiverAccountNumber, receiverAfter.Currency, receiverAfter.Balance,
		)
		return []models.NotificationDB{internal}
	}

	sent := base
	sent.NotificationID = uuid.New()
	sent.UserID = req.SenderUserID
	sent.Username = req.SenderUsername

	received := base
	received.NotificationID = uuid.New()
	received.UserID = req.ReceiverUserID
	received.Username = req.ReceiverUsername

	if req.Type == models.TransactionTypeDigitalPayment {
		sent.Event = models.NotificationEventPaymentMade
		sent.Message = fmt.Sprintf(
			"You have made a payment of %s %s to %s using %s. Your new balance is %s %s.",
			senderAfter.Currency, req.Amount, req.ReceiverUsername, req.PaymentMethod,
			senderAfter.Currency, senderAfter.Balance,
		)
		received.Event = models.NotificationEventPaymentReceived
		received.Message = fmt.Sprintf(
			"You have received a payment of %s %s from %s via %s. Your new balance is %s %s.",
			receiverAfter.Currency, req.Amount, req.SenderUsername, req.PaymentMethod,
			receiverAfter.Currency, receiverAfter.Balance,
		)
	} else {
		sent.Event = models.NotificationEventTransferSent
		sent.Message = fmt.Sprintf(
			"You have transferred %s %s to %s. Your new balance is %s %s.",
			senderAfter.Currency, req.Amount, req.ReceiverUsername,
			senderAfter.Currency, senderAfter.Balance,
		)
		received.Event = models.NotificationEventTransferReceived
		received.Message = fmt.Sprintf(
			"You have received a transfer of %s %s from %s. Your new balance is %s %s.",
			receiverAfter.Currency, req.Amount, req.SenderUsername,
			receiverAfter.Currency, receiverAfter.Balance,
		)
	}

	return []models.NotificationDB{sent, received}
}
