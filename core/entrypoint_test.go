package core

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Fanout(t *testing.T) {
	var console bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "slotframe.log")

	log, closer, err := newLogger(&console, slog.LevelInfo, logPath)
	require.NoError(t, err)
	log.Info("built schedules", "nodes", 3)
	log.Debug("hidden")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "built schedules")
	assert.NotContains(t, console.String(), "hidden")

	file, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(file), "msg=\"built schedules\" nodes=3")
	assert.NotContains(t, string(file), "hidden")
}

func TestNewLogger_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	log, closer, err := newLogger(&console, slog.LevelDebug, "")
	require.NoError(t, err)
	log.Debug("wrote schedule", "path", "sink.xml")
	assert.NoError(t, closer.Close())
	assert.Contains(t, console.String(), "wrote schedule")
}
