package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Struct(t *testing.T) {
	cfg := Config{
		Binary:     "/usr/local/bin/doxygen",
		Doxyfile:   "Doxyfile.ci",
		OutputDir:  "build/docs",
		HTMLDir:    "html",
		IndexFile:  "index.html",
		AutoOpen:   false,
		WatchPaths: []string{"src"},
	}

	assert.Equal(t, "/usr/local/bin/doxygen", cfg.Binary)
	assert.Equal(t, "Doxyfile.ci", cfg.Doxyfile)
	assert.Equal(t, "build/docs", cfg.OutputDir)
	assert.False(t, cfg.AutoOpen)
	assert.Equal(t, []string{"src"}, cfg.WatchPaths)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "doxygen", DefaultBinary)
	assert.Equal(t, "Doxyfile", DefaultDoxyfile)
	assert.Equal(t, "docs", DefaultOutputDir)
	assert.Equal(t, "html", DefaultHTMLDir)
	assert.Equal(t, "index.html", DefaultIndexFile)
	assert.True(t, DefaultAutoOpen)
	assert.Equal(t, ".doxy", DefaultConfigName)
	assert.Equal(t, "DOXY", EnvPrefix)
}

func TestInitConfigWritesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgFile := filepath.Join(t.TempDir(), "doxy.yaml")
	require.NoError(t, InitConfig(cfgFile))

	_, err := os.Stat(cfgFile)
	require.NoError(t, err)

	cfg := GetConfig()
	assert.Equal(t, DefaultBinary, cfg.Binary)
	assert.Equal(t, DefaultDoxyfile, cfg.Doxyfile)
	assert.Equal(t, DefaultWatchPaths, cfg.WatchPaths)
	assert.True(t, cfg.AutoOpen)
}

func TestInitConfigReadsExisting(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgFile := filepath.Join(t.TempDir(), "doxy.yaml")
	content := "binary: doxygen-1.9\ndoxyfile: Doxyfile.local\nauto_open: false\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o644))

	require.NoError(t, InitConfig(cfgFile))

	cfg := GetConfig()
	assert.Equal(t, "doxygen-1.9", cfg.Binary)
	assert.Equal(t, "Doxyfile.local", cfg.Doxyfile)
	assert.False(t, cfg.AutoOpen)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestKeys(t *testing.T) {
	keys := Keys()

	assert.Contains(t, keys, "binary")
	assert.Contains(t, keys, "doxyfile")
	assert.Contains(t, keys, "auto_open")
	assert.Contains(t, keys, "watch_paths")

	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestIsValidKey(t *testing.T) {
	assert.True(t, IsValidKey("binary"))
	assert.True(t, IsValidKey("watch_paths"))
	assert.False(t, IsValidKey("nope"))
	assert.False(t, IsValidKey(""))
}

func TestSet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Set("binary", "doxygen-custom"))
	got, err := Get("binary")
	require.NoError(t, err)
	assert.Equal(t, "doxygen-custom", got)
}

func TestSetAutoOpen(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Set("auto_open", "false"))
	got, err := Get("auto_open")
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	assert.Error(t, Set("auto_open", "maybe"))
}

func TestSetWatchPaths(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Set("watch_paths", "src, include , lib"))
	got, err := Get("watch_paths")
	require.NoError(t, err)
	assert.Equal(t, "src,include,lib", got)
}

func TestSetInvalidKey(t *testing.T) {
	err := Set("bogus", "value")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestSetEmptyValue(t *testing.T) {
	assert.Error(t, Set("doxyfile", "   "))
}

func TestGetInvalidKey(t *testing.T) {
	_, err := Get("bogus")
	assert.Error(t, err)
}
