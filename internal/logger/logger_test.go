package logger

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "horta")

	require.NoError(t, Init(Config{Debug: false, Dir: dir}))

	logDir := filepath.Join(dir, "logs")
	assert.DirExists(t, logDir)
	require.NotNil(t, Logger)

	Info("plant recomputed", "plant", "plant1")
	Warn("test warning")

	assert.FileExists(t, filepath.Join(logDir, "horta.log"))
}

func TestInitDebugMode(t *testing.T) {
	require.NoError(t, Init(Config{Debug: true, Dir: t.TempDir()}))
	require.NotNil(t, Logger)
	Debug("debug line", "habit", "habit1")
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	assert.NotPanics(t, func() {
		Debug("Test debug message")
		Info("Test info message")
		Warn("Test warning message")
		Error("Test error message")
	})
}

func TestDiscard(t *testing.T) {
	Discard()
	require.NotNil(t, Logger)
	Error("dropped")
}

func TestInitQuietDebug(t *testing.T) {
	require.NoError(t, Init(Config{Debug: true, Quiet: true, Dir: t.TempDir()}))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}
