package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"orderdispatch/internal/platform/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, observability.ParseLevel(input), input)
	}
}

func TestNewLogger_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLogger(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", slog.String("order", "ORD-1"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "ORD-1", entry["order"])
}

func TestInit_WithStdoutTraces(t *testing.T) {
	var logs, traces bytes.Buffer
	instruments, shutdown, err := observability.Init(context.Background(), observability.Settings{
		ServiceName: "orderdispatch-test",
		Environment: "test",
		LogOutput:   &logs,
		TraceWriter: &traces,
	})
	require.NoError(t, err)

	_, span := instruments.Tracer("test").Start(context.Background(), "claim")
	span.End()

	counter, err := instruments.Meter("test").Int64Counter("claims")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, traces.String(), "claim")
}

func TestNilInstrumentsFallBack(t *testing.T) {
	var instruments *observability.Instruments

	assert.NotNil(t, instruments.Tracer("x"))
	assert.NotNil(t, instruments.Meter("x"))
}
