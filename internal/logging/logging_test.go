package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/tirasundara/loan-ledger/internal/logging"
)

func TestNew(t *testing.T) {
	logger, err := logging.New("warn", false)
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	dev, err := logging.New("debug", true)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", false)

	assert.Error(t, err)
}
