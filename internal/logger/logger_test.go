package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	prev := Logger
	t.Cleanup(func() { Logger = prev })
}

func TestHelpers_NoopBeforeInit(t *testing.T) {
	resetLogger(t)
	Logger = nil

	assert.NotPanics(t, func() {
		Debug("debug")
		Info("info")
		Warn("warn")
		Error("error")
	})
}

func TestInit_CreatesLogFile(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()

	require.NoError(t, Init(Config{ConfigDir: dir}))
	Warn("plan generation hit the safety ceiling", "user", "ana")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "cronograma.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "safety ceiling")
	assert.Contains(t, string(data), "user=ana")
}

func TestInit_NormalModeDropsDebug(t *testing.T) {
	resetLogger(t)
	var stderr bytes.Buffer

	require.NoError(t, Init(Config{ConfigDir: t.TempDir(), Stderr: &stderr}))
	Debug("hidden")
	Info("hidden too")

	assert.Empty(t, stderr.String(), "normal mode never writes to stderr")
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
}

func TestInit_DebugModeEchoesToStderr(t *testing.T) {
	resetLogger(t)
	var stderr bytes.Buffer

	require.NoError(t, Init(Config{Debug: true, ConfigDir: t.TempDir(), Stderr: &stderr}))
	Debug("recalculating", "checked", 3)

	assert.Contains(t, stderr.String(), "recalculating")
	assert.Contains(t, stderr.String(), "checked=3")
}

func TestNew_UsesPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel, false)
	l.Info("hello")
	assert.Contains(t, buf.String(), "cronograma")
}
