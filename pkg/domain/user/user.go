package user

import (
	"strings"
	"time"

	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = domain.NewError(domain.ErrNotFound, "User not found")
	// ErrUserUnauthorized is returned when credentials do not match a user.
	ErrUserUnauthorized = domain.NewError(domain.ErrUnauthorized, "Invalid credentials")
	// ErrEmailTaken is returned when registering an email that already has a user.
	ErrEmailTaken = domain.NewError(domain.ErrAlreadyExists, "Email already registered")

	ErrInvalidRole = domain.NewError(domain.ErrValidation, "Invalid role")

	errEmptyEmail    = domain.NewError(domain.ErrValidation, "email cannot be empty")
	errInvalidEmail  = domain.NewError(domain.ErrValidation, "email is invalid")
	errShortPassword = domain.NewError(domain.ErrValidation, "password must be at least 8 characters")
)

// Role is the authorization role of a bank user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// KycStatus tracks identity verification of a user.
type KycStatus string

const (
	KycUnverified KycStatus = "unverified"
	KycPending    KycStatus = "pending"
	KycVerified   KycStatus = "verified"
	KycRejected   KycStatus = "rejected"
)

// User represents a bank user.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	KycStatus    KycStatus
	CreatedAt    time.Time
}

// NewUser creates a new customer with a hashed password.
func NewUser(email, fullName, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errEmptyEmail
	}
	if !utils.IsEmail(email) {
		return nil, errInvalidEmail
	}
	if len(password) < 8 {
		return nil, errShortPassword
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hashed,
		Role:         RoleCustomer,
		KycStatus:    KycUnverified,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
