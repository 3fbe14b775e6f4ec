package zap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/genlru"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	l.Debug("generation rollover", genlru.Fields{"evicted": 3})
	l.Info("info", nil)
	l.Warn("warn", genlru.Fields{})
	l.Error("error", genlru.Fields{"err": "boom"})

	entries := logs.All()
	require.Len(t, entries, 4)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "generation rollover", entries[0].Message)
	require.EqualValues(t, 3, entries[0].ContextMap()["evicted"])
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	require.Equal(t, "boom", entries[3].ContextMap()["err"])
	require.Empty(t, entries[1].Context)
}

func TestUsableAsStoreLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c, err := genlru.New(genlru.Options[string, int]{
		Capacity: 1,
		Logger:   ZapLogger{L: zap.New(core)},
	})
	require.NoError(t, err)

	c.Set("a", 1) // rollover, previous empty: not logged
	c.Set("b", 2) // rollover dropping a
	require.Equal(t, 1, logs.FilterMessage("generation rollover").Len())
}
