package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGlobalHelpersWriteToInstalledLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := L()
	Set(zap.New(core))
	defer Set(prev)

	Info("imported", zap.Int("count", 3))
	Warn("skipped row", zap.Int("row", 4))
	Error("upload failed")
	Debug("details")

	entries := logs.All()
	assert.Len(t, entries, 4)
	assert.Equal(t, "imported", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestInitDevelopment(t *testing.T) {
	prev := L()
	defer Set(prev)

	t.Setenv("ENV", "development")
	assert.NoError(t, Init())
	assert.True(t, L().Core().Enabled(zap.DebugLevel))
}

func TestInitProduction(t *testing.T) {
	prev := L()
	defer Set(prev)

	t.Setenv("ENV", "production")
	assert.NoError(t, Init())
	assert.False(t, L().Core().Enabled(zap.DebugLevel))
}
