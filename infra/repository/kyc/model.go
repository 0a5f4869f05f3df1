package kyc

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a row of kyc_submissions.
type Submission struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null"`
	FullName       string     `gorm:"size:128;not null"`
	DateOfBirth    time.Time  `gorm:"type:date;not null"`
	Address        string     `gorm:"size:256;not null"`
	DocumentType   string     `gorm:"size:32;not null"`
	DocumentNumber string     `gorm:"size:64;not null"`
	Status         string     `gorm:"size:16;not null"`
	ReviewerID     *uuid.UUID `gorm:"type:uuid"`
	ReviewNotes    string
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Submission model.
func (Submission) TableName() string {
	return "kyc_submissions"
}
