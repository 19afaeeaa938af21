package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordzzule/logging"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, logging.ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestNew_JSONRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	l := logging.WithComponent(logging.New(&buf, slog.LevelInfo, "json"), "solver")
	l.Info("solve failed", "error", errors.New("boom"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "boom", rec["err"])
	require.Equal(t, "solver", rec["component"])
	require.NotContains(t, rec, "error")
}

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, slog.LevelWarn, "text")
	l.Info("hidden")
	l.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		logging.Nop().Error("nothing")
		logging.WithComponent(nil, "x").Info("nothing")
	})
}
