package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fortizbank/fortiz/pkg/config"
)

var (
	errorColor = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF6B6B"}
	warnColor  = lipgloss.AdaptiveColor{Light: "#B86E00", Dark: "#F2A541"}
	infoColor  = lipgloss.AdaptiveColor{Light: "#1B7F5B", Dark: "#3DDC97"}
	debugColor = lipgloss.AdaptiveColor{Light: "#5C4B8A", Dark: "#A08BDB"}
	keyColor   = lipgloss.AdaptiveColor{Light: "#44546A", Dark: "#8FA3BF"}
)

// levelBadge renders a fixed width level column.
func levelBadge(label string, c lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().SetString(label).Bold(true).Width(5).Foreground(c)
}

// bankStyles highlights the attributes the services attach to every record:
// the failing error, the operation context and the acting user or transfer.
func bankStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = levelBadge("ERROR", errorColor)
	styles.Levels[log.WarnLevel] = levelBadge("WARN", warnColor)
	styles.Levels[log.InfoLevel] = levelBadge("INFO", infoColor)
	styles.Levels[log.DebugLevel] = levelBadge("DEBUG", debugColor)

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	for _, key := range []string{"context", "service", "user_id", "transfer_id", "reference"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(keyColor)
	}
	return styles
}

// newLogger builds the charmbracelet handler described by cfg on w.
// Unknown formats fall back to text.
func newLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{}
	}
	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.ReportCaller,
		ReportTimestamp: cfg.TimeFormat != "",
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	if formatter == log.TextFormatter {
		handler.SetStyles(bankStyles())
	}
	return slog.New(handler)
}

// setupLogger installs the configured logger as the process default.
func setupLogger(cfg *config.Log) *slog.Logger {
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}
