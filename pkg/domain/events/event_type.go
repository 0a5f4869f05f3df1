package events

// EventType represents the type of an event in the system.
type EventType string

const (
	// EventTypeNotificationRequested asks the notification sender to deliver an email.
	EventTypeNotificationRequested EventType = "Notification.Requested"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
