package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Setenv("PROJECT_TOOLS_HOME", dir)
	return dir
}

func TestDir_HonorsHomeOverride(t *testing.T) {
	dir := setup(t)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestSet_WritesFile(t *testing.T) {
	dir := setup(t)
	Load()

	require.NoError(t, Set(KeyLogLevel, "debug"))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: debug")

	viper.Reset()
	Load()
	assert.Equal(t, "debug", Get(KeyLogLevel))
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	setup(t)
	Load()

	err := Set("colour", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestComponents(t *testing.T) {
	setup(t)
	Load()

	assert.Nil(t, Components())

	require.NoError(t, Set(KeyComponents, "library, gui"))
	assert.Equal(t, []string{"library", "gui"}, Components())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	setup(t)
	t.Setenv("PROJECT_TOOLS_TEMPLATES_DIR", "/srv/templates")
	Load()

	assert.Equal(t, "/srv/templates", Get(KeyTemplatesDir))
}

func TestSet_ValidatesLogLevel(t *testing.T) {
	dir := setup(t)
	Load()

	require.Error(t, Set(KeyLogLevel, "chatty"))
	assert.NoFileExists(t, filepath.Join(dir, "config.yaml"))
	require.NoError(t, Set(KeyLogLevel, "warn"))
}

func TestComponents_EmptySettingIsHonoured(t *testing.T) {
	dir := setup(t)
	Load()

	require.NoError(t, Set(KeyComponents, ""))
	got := Components()
	assert.NotNil(t, got)
	assert.Empty(t, got)

	// The same holds for a YAML empty list read from disk.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("components: []\n"), 0o644))
	viper.Reset()
	Load()
	got = Components()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
