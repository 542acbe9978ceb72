package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusOpen   AccountStatus = "Open"
	AccountStatusClosed AccountStatus = "Closed"
)

// AccountDB represents an account record in the database
type AccountDB struct {
	AccountID     uuid.UUID       `json:"account_id" db:"account_id"`         // Primary key
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`               // Owning user
	AccountNumber string          `json:"account_number" db:"account_number"` // Unique account number
	AccountType   string          `json:"account_type" db:"account_type"`     // Checking, Savings, ...
	Currency      string          `json:"currency" db:"currency"`             // ISO currency code
	Balance       decimal.Decimal `json:"balance" db:"balance"`               // Current balance
	Status        AccountStatus   `json:"status" db:"status"`                 // Open or Closed
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Last update timestamp
}
