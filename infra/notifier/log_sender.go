package notifier

import (
	"context"
	"log/slog"
)

// LogSender writes notifications to the log instead of delivering them.
// It is used when no email API key is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "notifier")}
}

func (s *LogSender) Send(_ context.Context, to, template string, params map[string]string) error {
	s.logger.Info("email not sent, no provider configured",
		"to", to, "template", template, "params", params)
	return nil
}
