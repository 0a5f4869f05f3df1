package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is an extended transfer with a lifecycle.
type Transfer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	FromAccountID uuid.UUID       `gorm:"type:uuid;not null"`
	ToAccountID   *uuid.UUID      `gorm:"type:uuid"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	Status        string          `gorm:"size:16;not null"`
	RequiresMfa   bool            `gorm:"not null"`
	MfaVerified   bool            `gorm:"not null"`
	Reference     string          `gorm:"size:64;uniqueIndex"`
	Description   string
	RecipientName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Transfer model.
func (Transfer) TableName() string { return "transfers" }

// Hold reserves part of an account's available balance for a transfer.
type Hold struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransferID uuid.UUID       `gorm:"type:uuid;index;not null"`
	AccountID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	HoldType   string          `gorm:"size:16;not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Status     string          `gorm:"size:16;not null"`
	ReleasedAt *time.Time
	CreatedAt  time.Time
}

// TableName specifies the table name for the Hold model.
func (Hold) TableName() string { return "holds" }

// LedgerEntry is append-only.
type LedgerEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransferID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null"`
	EntryType    string          `gorm:"size:16;not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Category     string          `gorm:"size:32"`
	Description  string
	Reference    string `gorm:"size:64"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the LedgerEntry model.
func (LedgerEntry) TableName() string { return "ledger_entries" }

// Event is one status change of a transfer.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransferID  uuid.UUID `gorm:"type:uuid;index;not null"`
	EventType   string    `gorm:"size:32;not null"`
	FromStatus  string    `gorm:"size:16"`
	ToStatus    string    `gorm:"size:16;not null"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the table name for the Event model.
func (Event) TableName() string { return "transfer_events" }
