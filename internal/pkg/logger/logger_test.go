package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &ZapLogger{z: zap.New(core)}, logs
}

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	l, logs := newObserved(zapcore.InfoLevel)

	l.Debug("descartado", nil)
	l.Info("Aposta criada.", map[string]interface{}{"aposta_id": int64(7), "username": "alice"})
	l.Warn("Cache indisponível.", map[string]interface{}{"key": "cep:01001000"})
	l.Error("Falha ao inserir aposta.", errors.New("pq: timeout"))

	require.Equal(t, 3, logs.Len())

	entries := logs.All()
	assert.Equal(t, "Aposta criada.", entries[0].Message)
	assert.Equal(t, int64(7), entries[0].ContextMap()["aposta_id"])
	assert.Equal(t, "alice", entries[0].ContextMap()["username"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "pq: timeout", entries[2].ContextMap()["error"])
}

func TestZapLogger_With(t *testing.T) {
	l, logs := newObserved(zapcore.DebugLevel)

	child := l.With(map[string]interface{}{"request_id": "abc-123"})
	child.Info("Requisição concluída.", map[string]interface{}{"status": 200})

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "abc-123", ctx["request_id"])
	assert.Equal(t, int64(200), ctx["status"])
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l := NewLogger("verbose", "production")
	assert.NotNil(t, l)
	zl, ok := l.(*ZapLogger)
	require.True(t, ok)
	assert.False(t, zl.z.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zl.z.Core().Enabled(zapcore.InfoLevel))
}
