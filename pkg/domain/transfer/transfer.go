// Package transfer holds the transfer state machine and the errors raised by
// the internal transfer and transfer lifecycle flows.
package transfer

import (
	"slices"

	"github.com/fortizbank/fortiz/pkg/domain"
)

// Status is the lifecycle state of a transfer.
type Status string

const (
	StatusInitiated  Status = "initiated"
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSettled    Status = "settled"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// progressOrder is the happy path used to derive progress percentages.
var progressOrder = []Status{
	StatusInitiated,
	StatusPending,
	StatusProcessing,
	StatusSettled,
}

// Progress returns the completion percentage for a status.
// Failed and cancelled transfers report 0; settled reports 100.
func Progress(s Status) int {
	switch s {
	case StatusFailed, StatusCancelled:
		return 0
	case StatusSettled:
		return 100
	}
	idx := slices.Index(progressOrder, s)
	if idx < 0 {
		return 0
	}
	return (idx + 1) * 100 / len(progressOrder)
}

// CanCancel reports whether a transfer in status s may be cancelled.
func CanCancel(s Status) bool {
	return s == StatusInitiated || s == StatusPending
}

// IsTerminal reports whether s is a terminal status.
func IsTerminal(s Status) bool {
	return s == StatusSettled || s == StatusFailed || s == StatusCancelled
}

// Action is a lifecycle action requested on an extended transfer.
type Action string

const (
	ActionCancel    Action = "cancel"
	ActionVerifyMfa Action = "verify_mfa"
)

// MinMfaCodeLength is the shortest MFA code accepted by verify_mfa.
const MinMfaCodeLength = 6

// HoldType classifies a reservation. Transfers only reserve funds on the source account.
type HoldType string

const HoldOutgoing HoldType = "outgoing"

// HoldStatus is the state of a hold.
type HoldStatus string

const (
	HoldActive   HoldStatus = "active"
	HoldReleased HoldStatus = "released"
)

// Ledger entry types written by the lifecycle flow.
const (
	EntryRelease = "release"
	EntryHold    = "hold"
)

// Event types recorded in the status-change log.
const (
	EventInitiated   = "initiated"
	EventCancelled   = "cancelled"
	EventMfaVerified = "mfa_verified"
)

// LedgerCategory is the reporting category of transfer ledger entries.
const LedgerCategory = "transfer"

// Reference prefixes of the internal and extended transfer flows.
const (
	ReferencePrefixInternal = "TXN"
	ReferencePrefixExtended = "TRF"
)

// Errors returned by the transfer flows. Messages are returned verbatim to API callers.
var (
	ErrMissingFields       = domain.NewError(domain.ErrValidation, "Missing required fields")
	ErrInvalidAmount       = domain.NewError(domain.ErrValidation, "Amount must be greater than 0")
	ErrSameAccount         = domain.NewError(domain.ErrValidation, "Cannot transfer to the same account")
	ErrInvalidAccounts     = domain.NewError(domain.ErrValidation, "Invalid accounts")
	ErrInsufficientBalance = domain.NewError(domain.ErrBusinessRule, "Insufficient balance")
	ErrTransferNotFound    = domain.NewError(domain.ErrNotFound, "Transfer not found")
	ErrNotCancellable      = domain.NewError(domain.ErrBusinessRule, "Transfer cannot be cancelled at this stage")
	ErrMfaNotRequired      = domain.NewError(domain.ErrBusinessRule, "MFA verification not required for this transfer")
	ErrMfaAlreadyVerified  = domain.NewError(domain.ErrBusinessRule, "MFA already verified")
	ErrMfaNotAllowed       = domain.NewError(domain.ErrBusinessRule, "MFA cannot be verified for a completed or cancelled transfer")
	ErrInvalidMfaCode      = domain.NewError(domain.ErrValidation, "Invalid MFA code")
	ErrInvalidAction       = domain.NewError(domain.ErrValidation, "Invalid action")
)
