package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "cronograma.db"), cfg.DBPath)
	assert.Equal(t, DefaultUser, cfg.User)
	assert.False(t, cfg.Debug)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)
	t.Setenv("CRONOGRAMA_DB", "/tmp/plans.db")
	t.Setenv("CRONOGRAMA_USER", "ana")
	t.Setenv("CRONOGRAMA_DEBUG", "true")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plans.db", cfg.DBPath)
	assert.Equal(t, "ana", cfg.User)
	assert.True(t, cfg.Debug)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("user: bruno\ndebug: true\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "bruno", cfg.User)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)
	t.Setenv("CRONOGRAMA_USER", "carla")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("user: bruno\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "carla", cfg.User)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)
	// Registered so t.Setenv restores the variable after godotenv sets it.
	t.Setenv("CRONOGRAMA_USER", "")
	require.NoError(t, os.Unsetenv("CRONOGRAMA_USER"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CRONOGRAMA_USER=dora\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "dora", cfg.User)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("user: [unterminated\n"), 0o644))

	_, err := Load(New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_BlankUserFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRONOGRAMA_CONFIG_DIR", dir)
	t.Setenv("CRONOGRAMA_USER", "   ")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, DefaultUser, cfg.User)
}
