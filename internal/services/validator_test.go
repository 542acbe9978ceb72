package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
)

func validFixture() (models.TransferRequest, *models.AccountDB, *models.AccountDB, *models.UserDB, *models.UserDB) {
	senderUserID := uuid.New()
	receiverUserID := uuid.New()
	senderAccountID := uuid.New()
	receiverAccountID := uuid.New()

	req := models.TransferRequest{
		SenderAccountID:   senderAccountID,
		ReceiverAccountID: receiverAccountID,
		Amount:            decimal.NewFromFloat(50.0),
		Type:              models.TransactionTypeAccountTransfer,

		SenderUserID:        senderUserID,
		SenderUsername:      "fridaklo",
		SenderAccountNumber: "1234567890",
		SenderAccountType:   "Checking",

		ReceiverUserID:        receiverUserID,
		ReceiverUsername:      "gracehop",
		ReceiverAccountNumber: "9876543210",
		ReceiverAccountType:   "Savings",
	}

	senderAccount := &models.AccountDB{
		AccountID:     senderAccountID,
		UserID:        senderUserID,
		AccountNumber: "1234567890",
		AccountType:   "Checking",
		Currency:      "USD",
		Balance:       decimal.NewFromInt(1000),
		Status:        models.AccountStatusOpen,
	}
	receiverAccount := &models.AccountDB{
		AccountID:     receiverAccountID,
		UserID:        receiverUserID,
		AccountNumber: "9876543210",
		AccountType:   "Savings",
		Currency:      "USD",
		Balance:       decimal.NewFromInt(200),
		Status:        models.AccountStatusOpen,
	}
	senderUser := &models.UserDB{UserID: senderUserID, Username: "fridaklo"}
	receiverUser := &models.UserDB{UserID: receiverUserID, Username: "gracehop"}

	return req, senderAccount, receiverAccount, senderUser, receiverUser
}

func TestValidateTransfer_OK(t *testing.T) {
	req, sa, ra, su, ru := validFixture()
	assert.NoError(t, ValidateTransfer(req, sa, ra, su, ru))
}

func TestValidateTransfer_Amount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"zero amount", decimal.Zero, ErrAmountNotPositive},
		{"negative amount", decimal.NewFromInt(-10), ErrAmountNotPositive},
		{"above limit", decimal.NewFromInt(600), ErrAmountExceedsLimit},
		{"exactly at limit", decimal.NewFromInt(500), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, sa, ra, su, ru := validFixture()
			req.Amount = tt.amount

			err := ValidateTransfer(req, sa, ra, su, ru)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTransfer_PaymentMethod(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		wantErr error
	}{
		{"missing method", "", ErrPaymentMethodRequired},
		{"placeholder method", "N/A", ErrPaymentMethodRequired},
		{"valid method", "Zelle", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, sa, ra, su, ru := validFixture()
			req.Type = models.TransactionTypeDigitalPayment
			req.PaymentMethod = tt.method

			err := ValidateTransfer(req, sa, ra, su, ru)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTransfer_Accounts(t *testing.T) {
	t.Run("sender account missing", func(t *testing.T) {
		req, _, ra, su, ru := validFixture()
		assert.ErrorIs(t, ValidateTransfer(req, nil, ra, su, ru), ErrAccountNotFound)
	})

	t.Run("sender account closed", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		sa.Status = models.AccountStatusClosed
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrAccountClosed)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		sa.Balance = decimal.NewFromInt(10)
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrInsufficientFunds)
	})

	t.Run("sender account number mismatch", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		sa.AccountNumber = "0000000000"
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrAccountMismatch)
	})

	t.Run("receiver account missing", func(t *testing.T) {
		req, sa, _, su, ru := validFixture()
		assert.ErrorIs(t, ValidateTransfer(req, sa, nil, su, ru), ErrAccountNotFound)
	})

	t.Run("receiver account closed", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		ra.Status = models.AccountStatusClosed
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrAccountClosed)
	})

	t.Run("receiver account type mismatch", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		ra.AccountType = "Checking"
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrAccountMismatch)
	})
}

func TestValidateTransfer_Users(t *testing.T) {
	t.Run("sender user missing", func(t *testing.T) {
		req, sa, ra, _, ru := validFixture()
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, nil, ru), ErrUserNotFound)
	})

	t.Run("sender username mismatch", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		su.Username = "someoneelse"
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrUserMismatch)
	})

	t.Run("receiver user missing", func(t *testing.T) {
		req, sa, ra, su, _ := validFixture()
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, nil), ErrUserNotFound)
	})

	t.Run("receiver username mismatch", func(t *testing.T) {
		req, sa, ra, su, ru := validFixture()
		ru.Username = "someoneelse"
		assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrUserMismatch)
	})
}

func TestValidateTransfer_SameAccount(t *testing.T) {
	req, sa, ra, su, ru := validFixture()
	req.ReceiverUsername = req.SenderUsername
	req.ReceiverAccountNumber = req.SenderAccountNumber
	ra.AccountNumber = req.SenderAccountNumber
	ru.Username = req.SenderUsername

	assert.ErrorIs(t, ValidateTransfer(req, sa, ra, su, ru), ErrSameAccount)
}

func TestValidateTransfer_InternalAllowed(t *testing.T) {
	// Same user, different account numbers: allowed and flagged internal.
	req, sa, ra, su, ru := validFixture()
	req.ReceiverUserID = req.SenderUserID
	req.ReceiverUsername = req.SenderUsername
	ru.UserID = su.UserID
	ru.Username = su.Username

	assert.NoError(t, ValidateTransfer(req, sa, ra, su, ru))
	assert.True(t, req.Internal())
	assert.False(t, req.SameAccount())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrAmountExceedsLimit))
	assert.True(t, IsValidationError(ErrSameAccount))
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}
