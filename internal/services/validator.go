package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

// TransferLimit is the fixed per-request transfer ceiling.
var TransferLimit = decimal.NewFromInt(500)

// Validation failures are terminal for the request and never retried.
var (
	ErrAmountNotPositive     = errors.New("transaction amount must be greater than 0")
	ErrAmountExceedsLimit    = errors.New("transaction amount exceeds the limit of 500")
	ErrPaymentMethodRequired = errors.New("payment method must be selected for a digital payment")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountClosed         = errors.New("account is closed")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrAccountMismatch       = errors.New("account number or type does not match the stored account")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserMismatch          = errors.New("username does not match the stored user")
	ErrSameAccount           = errors.New("cannot transfer to the same account")
)

var validationErrors = []error{
	ErrAmountNotPositive,
	ErrAmountExceedsLimit,
	ErrPaymentMethodRequired,
	ErrAccountNotFound,
	ErrAccountClosed,
	ErrInsufficientFunds,
	ErrAccountMismatch,
	ErrUserNotFound,
	ErrUserMismatch,
	ErrSameAccount,
}

// IsValidationError reports whether err is a transfer precondition failure,
// as opposed to a conflict or persistence failure.
func IsValidationError(err error) bool {
	for _, e := range validationErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// ValidateTransfer checks every transfer precondition against the given
// snapshots, in fixed order, first failure wins. It is read-only: snapshots
// may be stale by the time the transaction opens, and the store's conflict
// detection is the safety net for that.
func ValidateTransfer(req models.TransferRequest, senderAccount, receiverAccount *models.AccountDB, senderUser, receiverUser *models.UserDB) error {
	if !req.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if req.Amount.GreaterThan(TransferLimit) {
		return ErrAmountExceedsLimit
	}
	if req.Type == models.TransactionTypeDigitalPayment &&
		(req.PaymentMethod == "" || req.PaymentMethod == "N/A") {
		return ErrPaymentMethodRequired
	}

	if senderAccount == nil {
		return ErrAccountNotFound
	}
	if senderAccount.Status == models.AccountStatusClosed {
		return ErrAccountClosed
	}
	if senderAccount.Balance.LessThan(req.Amount) {
		return ErrInsufficientFunds
	}
	if senderAccount.AccountNumber != req.SenderAccountNumber ||
		senderAccount.AccountType != req.SenderAccountType {
		return ErrAccountMismatch
	}

	if senderUser == nil {
		return ErrUserNotFound
	}
	if senderUser.Username != req.SenderUsername {
		return ErrUserMismatch
	}

	if receiverAccount == nil {
		return ErrAccountNotFound
	}
	if receiverAccount.Status == models.AccountStatusClosed {
		return ErrAccountClosed
	}
	if receiverAccount.AccountNumber != req.ReceiverAccountNumber ||
		receiverAccount.AccountType != req.ReceiverAccountType {
		return ErrAccountMismatch
	}

	if receiverUser == nil {
		return ErrUserNotFound
	}
	if receiverUser.Username != req.ReceiverUsername {
		return ErrUserMismatch
	}

	if req.SameAccount() {
		return ErrSameAccount
	}

	return nil
}
