package logger_test

import (
	"testing"

	"forwarding/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "prod", "development", ""} {
		l, err := logger.New(env)
		require.NoError(t, err, env)
		assert.NotNil(t, l)
	}

	prod, err := logger.New("production")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))

	dev, err := logger.New("development")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestComponent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	logger.Component(zap.New(core), "audit").Info("done")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "audit", logs.All()[0].ContextMap()["component"])
}
