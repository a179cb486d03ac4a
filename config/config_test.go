package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "Notes Backend API", c.AppName)
	assert.Equal(t, "1.0.0", c.Version)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "", c.DatabaseURL)
}

func TestLoadUsesDefaultsWithoutOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("NOTES_ADDR", "")
	t.Setenv("NOTES_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Notes Backend API", c.AppName)
	assert.Equal(t, ":8080", c.Addr)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "Notes Staging")
	t.Setenv("APP_VERSION", "2.1.0")
	t.Setenv("NOTES_ADDR", ":9090")
	t.Setenv("NOTES_DATABASE_URL", "postgres://localhost/notes")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Notes Staging", c.AppName)
	assert.Equal(t, "2.1.0", c.Version)
	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, "postgres://localhost/notes", c.DatabaseURL)
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.yaml")
	data := "app_name: From File\naddr: \":7070\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	t.Setenv("NOTES_CONFIG", path)
	t.Setenv("NOTES_ADDR", ":9090")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "From File", c.AppName)
	assert.Equal(t, ":9090", c.Addr, "env overrides the file")
	assert.Equal(t, "1.0.0", c.Version, "untouched fields keep defaults")
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("NOTES_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
