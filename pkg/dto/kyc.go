package dto

import (
	"time"

	"github.com/google/uuid"
)

// KycSubmit is the applicant input for identity verification.
type KycSubmit struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=128"`
	DateOfBirth    string `json:"date_of_birth" validate:"required"`
	Address        string `json:"address" validate:"required,min=5,max=256"`
	DocumentType   string `json:"document_type" validate:"required,oneof=passport national_id drivers_license"`
	DocumentNumber string `json:"document_number" validate:"required,min=4,max=64"`
}

// KycCreate is a DTO for inserting a submission.
type KycCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FullName       string
	DateOfBirth    time.Time
	Address        string
	DocumentType   string
	DocumentNumber string
	Status         string
}

// KycRead is a read-optimized view of a submission.
type KycRead struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	FullName       string     `json:"full_name"`
	DateOfBirth    time.Time  `json:"date_of_birth"`
	Address        string     `json:"address"`
	DocumentType   string     `json:"document_type"`
	DocumentNumber string     `json:"document_number"`
	Status         string     `json:"status"`
	ReviewerID     *uuid.UUID `json:"reviewer_id,omitempty"`
	ReviewNotes    string     `json:"review_notes,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// KycReview records an admin decision.
type KycReview struct {
	Status     string
	ReviewerID uuid.UUID
	Notes      string
	ReviewedAt time.Time
}
