package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandlerFormatsFixedLayout(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo)
	logger := slog.New(h)

	logger.Info("window framed", "client", 42)

	out := buf.String()
	require.Contains(t, out, " INFO window framed")
	require.Contains(t, out, "client=42")
	require.Regexp(t, `^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2} (AM|PM) INFO`, out)
}

func TestHandlerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelWarn)
	logger := slog.New(h)

	logger.Info("should not appear")
	logger.Warn("should appear")

	require.NotContains(t, buf.String(), "should not appear")
	require.Contains(t, buf.String(), "WARN should appear")
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo).WithAttrs([]slog.Attr{slog.Int("pid", 1)}).WithGroup("wm")
	logger := slog.New(h)

	logger.Info("starting", "phase", "init")

	out := buf.String()
	require.Contains(t, out, "pid=1")
	require.Contains(t, out, "wm.phase=init")
}

func TestLevelWordBoundaries(t *testing.T) {
	require.Equal(t, "DEBUG", levelWord(slog.LevelDebug))
	require.Equal(t, "INFO", levelWord(slog.LevelInfo))
	require.Equal(t, "WARN", levelWord(slog.LevelWarn))
	require.Equal(t, "ERROR", levelWord(slog.LevelError))
}
