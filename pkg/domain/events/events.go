package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything that can travel on the event bus.
type Event interface {
	Type() string
}

// Notification templates understood by the sender.
const (
	TemplateTransferCompleted = "transfer_completed"
	TemplateTransferCancelled = "transfer_cancelled"
	TemplateKycApproved       = "kyc_approved"
	TemplateKycRejected       = "kyc_rejected"
)

// NotificationRequested is a fire-and-forget request to email a user.
// Email may be empty, in which case the handler resolves it from UserID.
type NotificationRequested struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	Email      string            `json:"email,omitempty"`
	Template   string            `json:"template"`
	Params     map[string]string `json:"params"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Type implements Event.
func (e *NotificationRequested) Type() string {
	return EventTypeNotificationRequested.String()
}

// NewNotificationRequested builds a notification event stamped with a fresh id.
func NewNotificationRequested(
	userID uuid.UUID,
	template string,
	params map[string]string,
) *NotificationRequested {
	return &NotificationRequested{
		ID:         uuid.New(),
		UserID:     userID,
		Template:   template,
		Params:     params,
		OccurredAt: time.Now().UTC(),
	}
}

// EventTypes maps each wire type to a constructor used when decoding envelopes.
var EventTypes = map[EventType]func() Event{
	EventTypeNotificationRequested: func() Event { return &NotificationRequested{} },
}
