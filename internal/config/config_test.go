package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.JSON)
	assert.True(t, cfg.Quit)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DEFERIO_DEBUG", "true")
	t.Setenv("DEFERIO_PROMPT", "? ")
	t.Setenv("DEFERIO_QUIT_WORDS", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "? ", cfg.Prompt)
	assert.False(t, cfg.Quit)
}

func TestLoad_DotEnv(t *testing.T) {
	// godotenv sets process variables; register cleanup through t.Setenv first.
	t.Setenv("DEFERIO_JSON", "")
	t.Setenv("DEFERIO_LOG_LEVEL", "warn")
	require.NoError(t, os.Unsetenv("DEFERIO_JSON"))

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("DEFERIO_JSON=true\nDEFERIO_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.True(t, cfg.JSON)
	assert.Equal(t, "warn", cfg.LogLevel, "process environment wins over .env")
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DEFERIO_DEBUG", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
