package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(false, dir)
	require.NoError(t, err)
	assert.Nil(t, f)
	require.NotNil(t, logger)

	logger.Info("dropped")
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no log dir when debug is off")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(true, dir)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	logger.Info("test log message", "k", 1)

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "test log message")
	assert.Contains(t, text, "run=", "every record carries the run id")
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, f, err := setupLogging(true, dir)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasSuffix(e.Name(), ".log") {
			rotated = true
		}
	}
	assert.True(t, rotated, "oversized log renamed")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_NotStdoutStderr(t *testing.T) {
	_, f, err := setupLogging(true, t.TempDir())
	require.NoError(t, err)
	defer f.Close()

	assert.NotEqual(t, os.Stdout.Fd(), f.Fd())
	assert.NotEqual(t, os.Stderr.Fd(), f.Fd())
}
