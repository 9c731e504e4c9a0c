package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel("warn")
	})

	SetLevel("warn")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	SetLevel("debug")
	Debugf("trace %s", "on")
	assert.Contains(t, buf.String(), "trace on")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel("warn")
	})

	SetLevel("verbose")
	Debugf("nope")
	Infof("yes")
	assert.NotContains(t, buf.String(), "nope")
	assert.Contains(t, buf.String(), "yes")
}

func TestSetupFile(t *testing.T) {
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel("warn")
	})

	closer, err := SetupFile(nil, FileOptions{})
	require.NoError(t, err)
	assert.Nil(t, closer)

	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "herald.log")
	closer, err = SetupFile(&console, FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	require.NotNil(t, closer)

	SetLevel("info")
	Infof("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, console.String(), "to both")
}
