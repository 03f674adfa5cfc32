package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "fourword_game", c.CookieName)
	assert.Empty(t, c.DBPath)
	assert.Zero(t, c.Seed)
}

func TestLoadFromEnvAndDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDS_FILE=/tmp/words.txt\nPORT=9999\n"), 0o644))
	t.Setenv("PORT", "8080")
	t.Setenv("SEED", "42")
	t.Setenv("JWT_EXPIRES", "90m")
	// godotenv sets WORDS_FILE in the process env; clear it for later tests.
	t.Setenv("WORDS_FILE", "")
	require.NoError(t, os.Unsetenv("WORDS_FILE"))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port, "real env wins over .env")
	assert.Equal(t, "/tmp/words.txt", c.WordsFile)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 90*time.Minute, c.TokenTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SEED", "not-a-number")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
