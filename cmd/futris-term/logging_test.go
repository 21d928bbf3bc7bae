package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLoggingDisabled(t *testing.T) {
	inTempDir(t)

	assert.Nil(t, setupLogging(false))
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err))
}

func TestSetupLoggingEnabled(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())

	log.Println("hello")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSetupLoggingRotation(t *testing.T) {
	inTempDir(t)

	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
