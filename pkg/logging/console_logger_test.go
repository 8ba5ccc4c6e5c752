package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(Logger)
		level string
		msg   string
	}{
		{"info", func(l Logger) { l.Info("hello world") }, "INFO", "hello world"},
		{"warn", func(l Logger) { l.Warn("warning message") }, "WARN", "warning message"},
		{"error", func(l Logger) { l.Error("error occurred") }, "ERROR", "error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, false))

			output := buf.String()
			assert.Contains(t, output, tt.level)
			assert.Contains(t, output, tt.msg)
		})
	}
}

func TestConsoleLogger_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("plain")

	assert.False(t, logger.color)
	assert.NotContains(t, buf.String(), "\033[")
}

func TestConsoleLogger_Debug_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	logger.Debug("debug info")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "debug info")
}

func TestConsoleLogger_Debug_NotVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Debug("debug info")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_InfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("msg", StringField("key", "val"))
	assert.Contains(t, buf.String(), "{key=val}")
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	child := logger.WithFields(
		StringField("run", "meta"),
		StringField("env", "test"),
	)
	cl, ok := child.(*ConsoleLogger)
	require.True(t, ok)
	assert.Equal(t, "test", cl.fields["env"])
	assert.Empty(t, logger.fields)

	child.Info("msg", IntField("n", 1))
	assert.Contains(t, buf.String(), "{env=test, run=meta, n=1}")
}

func TestConsoleLogger_Close(t *testing.T) {
	logger := NewConsoleLogger(false)
	assert.NoError(t, logger.Close())
}
