package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dx.log")

	log := NewLogger("warn", ENCODING_JSON, path)
	log.Info("dropped")
	log.Warn("kept", zap.String("object", "record-1"))
	require.NoError(t, log.Sync())

	out, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "dropped")
	assert.Contains(t, string(out), `"object":"record-1"`)
	assert.Contains(t, string(out), `"timestamp"`)
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	log := NewLogger("loud", ENCODING_CONSOLE, filepath.Join(t.TempDir(), "dx.log"))

	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}
