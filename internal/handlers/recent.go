package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
	"github.com/sbilibin2017/gw-bank-transfers/internal/services"
)

// RecentTransactionsReader defines the interface that the service must implement.
type RecentTransactionsReader interface {
	GetRecentTransactions(ctx context.Context, identifier string) ([]models.TransactionDB, error)
}

// RecentTransactionsResponse represents the recent transactions of a user
// swagger:model RecentTransactionsResponse
type RecentTransactionsResponse struct {
	// Transactions, most recent first, at most 20
	Transactions []models.TransactionDB `json:"transactions"`
}

// RecentTransactionsErrorResponse represents an error response
// swagger:model RecentTransactionsErrorResponse
type RecentTransactionsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewRecentTransactionsHandler returns an HTTP handler listing a user's
// recent transactions.
// @Summary Recent transactions of a user
// @Description Returns up to 20 most recent transactions for a user, identified by user id or username.
// @Tags users
// @Produce json
// @Param identifier path string true "User id or username"
// @Success 200 {object} handlers.RecentTransactionsResponse "Recent transactions"
// @Failure 404 {object} handlers.RecentTransactionsErrorResponse "User not found"
// @Failure 500 {object} handlers.RecentTransactionsErrorResponse "Internal server error"
// @Router /users/{identifier}/transactions [get]
// @Security BearerAuth
func NewRecentTransactionsHandler(svc RecentTransactionsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		identifier := chi.URLParam(r, "identifier")

		transactions, err := svc.GetRecentTransactions(ctx, identifier)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RecentTransactionsErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to get recent transactions", "identifier", identifier, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RecentTransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		if transactions == nil {
			transactions = []models.TransactionDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RecentTransactionsResponse{Transactions: transactions})
	}
}
