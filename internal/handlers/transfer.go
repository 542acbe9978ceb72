package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
	"github.com/sbilibin2017/gw-bank-transfers/internal/services"
)

// TransferPerformer defines the interface that the service must implement.
type TransferPerformer interface {
	PerformTransfer(ctx context.Context, req models.TransferRequest) (uuid.UUID, error)
}

// TransferRequest represents the JSON body for a transfer between accounts
// swagger:model TransferRequest
type TransferRequest struct {
	// Sender account id
	// required: true
	SenderAccountID string `json:"account_id_sender"`

	// Receiver account id
	// required: true
	ReceiverAccountID string `json:"account_id_receiver"`

	// Amount to transfer
	// required: true
	// default: 50.0
	Amount decimal.Decimal `json:"transaction_amount"`

	// Sender user id
	// required: true
	SenderUserID string `json:"sender_user_id"`

	// Sender username
	// required: true
	// default: fridaklo
	SenderUsername string `json:"sender_user_name"`

	// Sender account number
	// required: true
	SenderAccountNumber string `json:"sender_account_number"`

	// Sender account type
	// required: true
	// default: Checking
	SenderAccountType string `json:"sender_account_type"`

	// Receiver user id
	// required: true
	ReceiverUserID string `json:"receiver_user_id"`

	// Receiver username
	// required: true
	ReceiverUsername string `json:"receiver_user_name"`

	// Receiver account number
	// required: true
	ReceiverAccountNumber string `json:"receiver_account_number"`

	// Receiver account type
	// required: true
	// default: Savings
	ReceiverAccountType string `json:"receiver_account_type"`

	// Transaction description
	Description string `json:"transaction_description"`

	// Payment method, digital payments only
	PaymentMethod string `json:"payment_method"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Account transfer transaction completed successfully.
	Message string `json:"message"`

	// Identity of the committed transaction
	TransactionID string `json:"transaction_id"`
}

// TransferErrorResponse represents an error response for a transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// toModel converts the wire request into the domain command.
func (req TransferRequest) toModel(transferType models.TransactionType) (models.TransferRequest, error) {
	senderAccountID, err := uuid.Parse(req.SenderAccountID)
	if err != nil {
		return models.TransferRequest{}, fmt.Errorf("invalid account_id_sender: %w", err)
	}
	receiverAccountID, err := uuid.Parse(req.ReceiverAccountID)
	if err != nil {
		return models.TransferRequest{}, fmt.Errorf("invalid account_id_receiver: %w", err)
	}
	senderUserID, err := uuid.Parse(req.SenderUserID)
	if err != nil {
		return models.TransferRequest{}, fmt.Errorf("invalid sender_user_id: %w", err)
	}
	receiverUserID, err := uuid.Parse(req.ReceiverUserID)
	if err != nil {
		return models.TransferRequest{}, fmt.Errorf("invalid receiver_user_id: %w", err)
	}

	return models.TransferRequest{
		SenderAccountID:   senderAccountID,
		ReceiverAccountID: receiverAccountID,
		Amount:            req.Amount,
		Type:              transferType,
		Description:       req.Description,
		PaymentMethod:     req.PaymentMethod,

		SenderUserID:        senderUserID,
		SenderUsername:      req.SenderUsername,
		SenderAccountNumber: req.SenderAccountNumber,
		SenderAccountType:   req.SenderAccountType,

		ReceiverUserID:        receiverUserID,
		ReceiverUsername:      req.ReceiverUsername,
		ReceiverAccountNumber: req.ReceiverAccountNumber,
		ReceiverAccountType:   req.ReceiverAccountType,
	}, nil
}

// NewTransferHandler returns an HTTP handler for account transfers.
// @Summary Perform an account transfer
// @Description Moves funds between two accounts atomically: balances, transaction log, recent activity, and notifications change together or not at all.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Account transfer transaction completed successfully"
// @Failure 400 {object} handlers.TransferErrorResponse "Validation failure"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TransferErrorResponse "Transfer aborted"
// @Router /transfers [post]
// @Security BearerAuth
func NewTransferHandler(svc TransferPerformer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleTransfer(w, r, svc, models.TransactionTypeAccountTransfer,
			"Account transfer transaction completed successfully.")
	}
}

func handleTransfer(w http.ResponseWriter, r *http.Request, svc TransferPerformer, transferType models.TransactionType, successMessage string) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Errorw("failed to decode transfer request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
		return
	}

	transfer, err := req.toModel(transferType)
	if err != nil {
		logger.Log.Warnw("invalid transfer identifiers", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: err.Error()})
		return
	}

	transactionID, err := svc.PerformTransfer(ctx, transfer)
	if err != nil {
		if services.IsValidationError(err) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: err.Error()})
			return
		}
		logger.Log.Errorw("transfer failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TransferResponse{
		Message:       successMessage,
		TransactionID: transactionID.String(),
	})
}
