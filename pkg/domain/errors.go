package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a user is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a user is not allowed to perform an action
	ErrForbidden = errors.New("forbidden")
	// ErrBusinessRule is returned when a request is well formed but breaks a business rule
	ErrBusinessRule = errors.New("business rule violation")
)

// Error is a domain error carrying the short message returned to API callers.
// Kind is one of the common sentinels above and drives the HTTP status mapping.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is reports whether target is the error itself or its kind.
func (e *Error) Is(target error) bool {
	return e == target || e.Kind == target
}

// NewError creates a domain error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// DependencyError wraps a failure of the persistence or notification collaborator.
// Op is the caller-facing message; the underlying error is kept for logs only.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *DependencyError) Unwrap() error { return e.Err }

// Dependency wraps err as a DependencyError.
func Dependency(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}
