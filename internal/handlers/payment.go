package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// NewPaymentHandler returns an HTTP handler for digital payments. Digital
// payments follow the same atomic transfer path as account transfers but
// require a payment method and emit payment notifications.
// @Summary Perform a digital payment
// @Description Moves funds between two accounts as a digital payment. Requires a payment method.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Payment Request"
// @Success 200 {object} handlers.TransferResponse "Digital payment transaction completed successfully"
// @Failure 400 {object} handlers.TransferErrorResponse "Validation failure"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TransferErrorResponse "Transfer aborted"
// @Router /payments [post]
// @Security BearerAuth
func NewPaymentHandler(svc TransferPerformer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleTransfer(w, r, svc, models.TransactionTypeDigitalPayment,
			"Digital payment transaction completed successfully.")
	}
}
