package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized DTO for transaction queries, API responses, and reporting.
type TransactionRead struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	AccountID       uuid.UUID       `json:"account_id"`
	TransactionType string          `json:"transaction_type"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionCreate is a DTO for creating a new transaction.
// BalanceAfter is computed by the caller.
type TransactionCreate struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       uuid.UUID
	TransactionType string
	Direction       string
	Amount          decimal.Decimal
	Currency        string
	Status          string
	Description     string
	Reference       string
	BalanceAfter    decimal.Decimal
	Metadata        map[string]any
}
