package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"customer-management/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LoggerConfig{Level: "info", Encoding: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("hello", "customerID", "CUST001")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected, got %q", buf.String())
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "CUST001", entry["customerID"])
	assert.Equal(t, "customer-management", entry["service"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LoggerConfig{Level: "debug", Encoding: "text"}, &buf)

	logger.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}
