package alert

import (
	"time"

	"github.com/google/uuid"
)

// Alert is a user-facing notification row.
type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Type      string    `gorm:"size:32;not null"`
	Title     string    `gorm:"size:128;not null"`
	Message   string
	Severity  string `gorm:"size:16;not null"`
	IsRead    bool   `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Alert model.
func (Alert) TableName() string {
	return "alerts"
}
