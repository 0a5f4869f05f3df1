package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;index;not null"`
	AccountNumber    string          `gorm:"uniqueIndex;size:20;not null"`
	AccountType      string          `gorm:"size:16;not null"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	Balance          decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	AvailableBalance decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Status           string          `gorm:"size:16;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
