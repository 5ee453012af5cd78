package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, Service: "gamevault", Version: "test"})

	ctx := WithCorrelationID(context.Background(), "abc")
	logger.InfoContext(ctx, "hello", "items", 3)
	logger.Debug("hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "gamevault", record["service"])
	assert.Equal(t, "test", record["version"])
	assert.Equal(t, "abc", record[CorrelationIDKey])
	assert.EqualValues(t, 3, record["items"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf}).With("component", "tui")

	logger.Debug("shown")

	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "component=tui")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, CorrelationID(context.Background()))
	assert.Len(t, CorrelationID(NewCorrelationID(context.Background())), 36)
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	LogDuration(context.Background(), New(Config{Output: &buf}), "load", time.Now())
	assert.Contains(t, buf.String(), "operation=load")
}
