package kyc

import (
	"time"

	"github.com/fortizbank/fortiz/pkg/domain"
)

// Status is the review state of a KYC submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// DocumentType is the identity document backing a submission.
type DocumentType string

const (
	DocumentPassport       DocumentType = "passport"
	DocumentNationalID     DocumentType = "national_id"
	DocumentDriversLicense DocumentType = "drivers_license"
)

// ReviewAction is the admin decision on a submission.
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// MinimumAge is the youngest age allowed to open an account.
const MinimumAge = 18

var (
	ErrAlreadySubmitted   = domain.NewError(domain.ErrBusinessRule, "KYC submission already exists")
	ErrSubmissionNotFound = domain.NewError(domain.ErrNotFound, "KYC submission not found")
	ErrAlreadyReviewed    = domain.NewError(domain.ErrBusinessRule, "KYC submission already reviewed")
	ErrUnderage           = domain.NewError(domain.ErrValidation, "Applicant must be at least 18 years old")
	ErrInvalidBirthDate   = domain.NewError(domain.ErrValidation, "Invalid date of birth")
	ErrInvalidAction      = domain.NewError(domain.ErrValidation, "Invalid action")
)

// ParseBirthDate parses a YYYY-MM-DD date and checks the applicant is an adult at now.
func ParseBirthDate(s string, now time.Time) (time.Time, error) {
	dob, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidBirthDate
	}
	if dob.After(now) {
		return time.Time{}, ErrInvalidBirthDate
	}
	if dob.AddDate(MinimumAge, 0, 0).After(now) {
		return time.Time{}, ErrUnderage
	}
	return dob, nil
}
