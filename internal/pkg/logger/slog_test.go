//go:build unit

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestNewHandler(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")

	t.Run("request_id_and_service", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(NewHandler(&buf, slog.LevelInfo)).InfoContext(ctx, "quote priced")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "quote priced", record["msg"])
		assert.Equal(t, "req-1", record["request_id"])
		assert.Equal(t, ServiceName, record["service"])
		assert.NotContains(t, record, "stack_trace")
	})

	t.Run("stack_trace_on_error", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(NewHandler(&buf, slog.LevelInfo)).ErrorContext(ctx, "solver crashed")

		assert.Contains(t, decodeRecord(t, &buf), "stack_trace")
	})

	t.Run("with_attrs_keeps_wrapper", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(NewHandler(&buf, slog.LevelInfo)).With(slog.String("component", "optimizer")).
			InfoContext(ctx, "assignment solved")

		record := decodeRecord(t, &buf)
		assert.Equal(t, "optimizer", record["component"])
		assert.Equal(t, "req-1", record["request_id"])
	})

	t.Run("below_level_dropped", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(NewHandler(&buf, slog.LevelWarn)).InfoContext(ctx, "noise")

		assert.Zero(t, buf.Len())
	})
}
