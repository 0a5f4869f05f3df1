package transaction

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metadata is the open key-value bag stored as jsonb.
type Metadata map[string]any

// Value implements driver.Valuer.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *Metadata) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("metadata: unsupported scan type %T", src)
	}
	return json.Unmarshal(raw, m)
}

// Transaction represents a persisted financial transaction.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	AccountID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	TransactionType string          `gorm:"size:16;not null"`
	Direction       string          `gorm:"size:8;not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Status          string          `gorm:"size:16;not null"`
	Description     string
	Reference       string          `gorm:"size:64;index"`
	BalanceAfter    decimal.Decimal `gorm:"type:numeric(20,2)"`
	Metadata        Metadata        `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
