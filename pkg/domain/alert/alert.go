// Package alert names the user-facing alerts raised by the services.
package alert

// Type classifies an alert.
type Type string

const (
	TypeTransfer Type = "transfer"
	TypeKyc      Type = "kyc"
	TypeSecurity Type = "security"
)

// Severity of an alert.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)
