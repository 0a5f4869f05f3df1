package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InternalTransferRequest is the input of the internal transfer flow.
// Fields are kept raw so presence can be checked before anything is parsed.
type InternalTransferRequest struct {
	FromAccountID string           `json:"from_account_id"`
	ToAccountID   string           `json:"to_account_id"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   string           `json:"description"`
}

// InternalTransferResult reports the rows written by a completed internal transfer.
type InternalTransferResult struct {
	Reference      string
	DebitID        uuid.UUID
	CreditID       uuid.UUID
	FromBalance    decimal.Decimal
	ToBalance      decimal.Decimal
	NotificationOK bool
}

// TransferInitiateRequest is the input of the extended (v2) transfer initiation.
// A nil ToAccountID denotes an external beneficiary.
type TransferInitiateRequest struct {
	FromAccountID string           `json:"from_account_id"`
	ToAccountID   *string          `json:"to_account_id"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   string           `json:"description"`
	RecipientName string           `json:"recipient_name"`
}

// TransferRead is a read-optimized DTO for extended transfers.
type TransferRead struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   *uuid.UUID      `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	RequiresMfa   bool            `json:"requires_mfa"`
	MfaVerified   bool            `json:"mfa_verified"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	RecipientName string          `json:"recipient_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransferCreate is a DTO for creating an extended transfer.
type TransferCreate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   *uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	Status        string
	RequiresMfa   bool
	Reference     string
	Description   string
	RecipientName string
}

// HoldRead is a reservation against an account's available balance.
type HoldRead struct {
	ID         uuid.UUID       `json:"id"`
	TransferID uuid.UUID       `json:"transfer_id"`
	AccountID  uuid.UUID       `json:"account_id"`
	HoldType   string          `json:"hold_type"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	ReleasedAt *time.Time      `json:"released_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// HoldCreate is a DTO for placing a hold.
type HoldCreate struct {
	ID         uuid.UUID
	TransferID uuid.UUID
	AccountID  uuid.UUID
	HoldType   string
	Amount     decimal.Decimal
}

// LedgerEntryRead is an append-only audit record of a transfer balance effect.
type LedgerEntryRead struct {
	ID           uuid.UUID       `json:"id"`
	TransferID   uuid.UUID       `json:"transfer_id"`
	AccountID    uuid.UUID       `json:"account_id"`
	UserID       uuid.UUID       `json:"user_id"`
	EntryType    string          `json:"entry_type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LedgerEntryCreate is a DTO for appending a ledger entry.
type LedgerEntryCreate struct {
	ID           uuid.UUID
	TransferID   uuid.UUID
	AccountID    uuid.UUID
	UserID       uuid.UUID
	EntryType    string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Category     string
	Description  string
	Reference    string
}

// TransferEventRead is one row of a transfer's status-change log.
type TransferEventRead struct {
	ID          uuid.UUID `json:"id"`
	TransferID  uuid.UUID `json:"transfer_id"`
	EventType   string    `json:"event_type"`
	FromStatus  string    `json:"from_status,omitempty"`
	ToStatus    string    `json:"to_status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransferEventCreate is a DTO for appending to the status-change log.
type TransferEventCreate struct {
	ID          uuid.UUID
	TransferID  uuid.UUID
	EventType   string
	FromStatus  string
	ToStatus    string
	Description string
}

// TransferDetail is the aggregated view returned by the detail endpoint.
type TransferDetail struct {
	Transfer      *TransferRead        `json:"transfer"`
	FromAccount   *AccountRead         `json:"from_account"`
	ToAccount     *AccountRead         `json:"to_account"`
	Holds         []*HoldRead          `json:"holds"`
	LedgerEntries []*LedgerEntryRead   `json:"ledger_entries"`
	Events        []*TransferEventRead `json:"events"`
	Progress      int                  `json:"progress"`
}

// TransferActionRequest is the body of a lifecycle action.
type TransferActionRequest struct {
	Action  string `json:"action"`
	MfaCode string `json:"mfa_code"`
}

// TransferActionResult is returned by a successful lifecycle action.
type TransferActionResult struct {
	Message  string        `json:"message"`
	Transfer *TransferRead `json:"transfer"`
}
