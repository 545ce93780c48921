package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	client "github.com/peteraglen/pwnboard-go-client"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("debug", zapcore.AddSync(&buf))

	log.Debugf("POST %s", "https://board.test/pwn/log")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "POST https://board.test/pwn/log", entry["msg"])
	assert.Contains(t, entry, "ts")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("error", zapcore.AddSync(&buf))

	log.Debugf("hidden")
	log.Warnf("hidden")
	require.NoError(t, log.Sync())

	assert.Empty(t, buf.String())
}

func TestNew_SatisfiesRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var requestLogger client.RequestLogger = New("debug", zapcore.AddSync(&buf))

	requestLogger.Errorf("POST %s failed", "https://board.test/pwn/log")

	assert.Contains(t, buf.String(), "POST https://board.test/pwn/log failed")
}
