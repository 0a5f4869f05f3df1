package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for account queries, API responses, and reporting.
type AccountRead struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	AccountNumber    string          `json:"account_number"`
	AccountType      string          `json:"account_type"`
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AccountNumber string
	AccountType   string
	Currency      string
	Balance       decimal.Decimal
	Status        string
}

// BalanceUpdate carries both balance columns written in a single statement.
type BalanceUpdate struct {
	Balance          decimal.Decimal
	AvailableBalance decimal.Decimal
}

// DashboardSummary is the aggregated home view of a customer.
type DashboardSummary struct {
	TotalBalance       decimal.Decimal            `json:"total_balance"`
	TotalAvailable     decimal.Decimal            `json:"total_available"`
	Accounts           []*AccountRead             `json:"accounts"`
	RecentTransactions []*TransactionRead         `json:"recent_transactions"`
	CategoryBreakdown  map[string]decimal.Decimal `json:"category_breakdown"`
	UnreadAlerts       int64                      `json:"unread_alerts"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}
