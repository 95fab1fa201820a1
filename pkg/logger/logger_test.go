package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Zeros   int    `json:"zeros"`
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		verbosity     int
		logFunc       func(Logger)
		expectedLevel string
		expectedMsg   string
		shouldLog     bool
	}{
		{
			name:      "info level with default verbosity",
			verbosity: 0,
			logFunc: func(l Logger) {
				l.Info("info message")
			},
			expectedLevel: "info",
			expectedMsg:   "info message",
			shouldLog:     true,
		},
		{
			name:      "debug level with insufficient verbosity",
			verbosity: 0,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			shouldLog: false,
		},
		{
			name:      "debug level with sufficient verbosity",
			verbosity: 1,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			expectedLevel: "debug",
			expectedMsg:   "debug message",
			shouldLog:     true,
		},
		{
			name:      "trace level with insufficient verbosity",
			verbosity: 1,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			shouldLog: false,
		},
		{
			name:      "trace level with sufficient verbosity",
			verbosity: 2,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			expectedLevel: "debug",
			expectedMsg:   "TRACE: trace message",
			shouldLog:     true,
		},
		{
			name:      "error level always shown",
			verbosity: 0,
			logFunc: func(l Logger) {
				l.Error("error message")
			},
			expectedLevel: "error",
			expectedMsg:   "error message",
			shouldLog:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(Config{
				Verbosity: tt.verbosity,
				Output:    &buf,
			})

			tt.logFunc(log)

			if !tt.shouldLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry logEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedMsg, entry.Message)
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Verbosity: 0, Output: &buf})

	log.WithFields(Fields{"zeros": 3}).Info("search started")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search started", entry.Message)
	assert.Equal(t, 3, entry.Zeros)
}
