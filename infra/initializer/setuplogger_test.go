package initializer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Log{Format: "json"}, &buf)

	logger.With("context", "Transfer").Info("transfer completed", "reference", "TXN-1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "transfer completed", record["msg"])
	assert.Equal(t, "Transfer", record["context"])
	assert.Equal(t, "TXN-1", record["reference"])
	assert.NotContains(t, record, "caller")
}

func TestNewLogger_ReportCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Log{Format: "json", ReportCaller: true}, &buf)

	logger.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, "caller")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Log{Format: "text"}, &buf)

	logger.Debug("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
}

func TestNewLogger_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	newLogger(nil, &buf).Info("ok")
	assert.Contains(t, buf.String(), "ok")
}
