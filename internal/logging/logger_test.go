package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGlobalLogger(t *testing.T) {
	// Global logger is usable before InitLogger
	require.NotNil(t, Logger)
	Logger.Info("test message")
	Logger.Named("child").Debug("test debug", zap.Bool("flag", true))
}

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	// Invalid level keeps the production default
	os.Setenv("LOG_LEVEL", "invalid")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.False(t, Logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zap.InfoLevel))
}

func TestInitLogger_Development(t *testing.T) {
	os.Setenv("ENVIRONMENT", "development")
	defer os.Unsetenv("ENVIRONMENT")

	require.NoError(t, InitLogger())
	Logger.Info("console output")
}

func TestInitLogger_MultipleInit(t *testing.T) {
	require.NoError(t, InitLogger())
	require.NoError(t, InitLogger())
	assert.NotNil(t, Logger)
}
