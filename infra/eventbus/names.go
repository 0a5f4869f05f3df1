package eventbus

import (
	"fmt"
	"strings"

	"github.com/fortizbank/fortiz/pkg/domain/events"
)

func streamNameFor(prefix string, eventType events.EventType) string {
	return prefix + nameFor("events", eventType)
}

func dlqStreamName(prefix string, eventType events.EventType) string {
	return prefix + nameFor("dlq", eventType)
}

func groupNameFor(eventType events.EventType) string {
	return nameFor("group", eventType)
}

func nameFor(kind string, eventType events.EventType) string {
	parts := strings.Split(eventType.String(), ".")
	if len(parts) == 2 {
		return fmt.Sprintf("%s:%s:%s", kind, strings.ToLower(parts[0]), strings.ToLower(parts[1]))
	}
	return fmt.Sprintf("%s:%s", kind, strings.ToLower(eventType.String()))
}

func topicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(eventType.String()))
}

func dlqTopicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.dlq.%s", prefix, strings.ToLower(eventType.String()))
}

func parseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
