package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, Debug, ParseLevel(" DEBUG "))
	require.Equal(t, Warn, ParseLevel("warning"))
	require.Equal(t, Info, ParseLevel(""))
	require.Equal(t, Info, ParseLevel("verbose"))
	require.Equal(t, "error", Error.String())
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, FormatJSON, ParseFormat("Json"))
	require.Equal(t, FormatText, ParseFormat("logfmt"))
}

func TestZapLogger_WithAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"component": "store"})

	l.Warn("stored ledger is corrupt", map[string]any{"path": "/tmp/x.json", "": "ignored"})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	require.Equal(t, "store", ctx["component"])
	require.Equal(t, "/tmp/x.json", ctx["path"])
	require.NotContains(t, ctx, "")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing", nil)
	require.Same(t, l, l.With(nil))
}
