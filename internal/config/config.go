// Package config loads and persists tool configuration through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Binary     string   `mapstructure:"binary"`
	Doxyfile   string   `mapstructure:"doxyfile"`
	OutputDir  string   `mapstructure:"output_dir"`
	HTMLDir    string   `mapstructure:"html_dir"`
	IndexFile  string   `mapstructure:"index_file"`
	AutoOpen   bool     `mapstructure:"auto_open"`
	WatchPaths []string `mapstructure:"watch_paths"`
}

// Default configuration values.
const (
	DefaultBinary     = "doxygen"
	DefaultDoxyfile   = "Doxyfile"
	DefaultOutputDir  = "docs"
	DefaultHTMLDir    = "html"
	DefaultIndexFile  = "index.html"
	DefaultAutoOpen   = true
	DefaultConfigName = ".doxy"
	EnvPrefix         = "DOXY"
)

// DefaultWatchPaths are the source directories watched by watch mode unless
// configured otherwise.
var DefaultWatchPaths = []string{"src", "include"}

// InitConfig initializes viper with defaults, the config file, and
// environment variables. When no config file exists one is written with the
// defaults, matching first-run behavior.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("binary", DefaultBinary)
	viper.SetDefault("doxyfile", DefaultDoxyfile)
	viper.SetDefault("output_dir", DefaultOutputDir)
	viper.SetDefault("html_dir", DefaultHTMLDir)
	viper.SetDefault("index_file", DefaultIndexFile)
	viper.SetDefault("auto_open", DefaultAutoOpen)
	viper.SetDefault("watch_paths", DefaultWatchPaths)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			// First run: persist the defaults so users have a file to edit.
			return writeDefaultConfig(cfgFile)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func writeDefaultConfig(cfgFile string) error {
	configPath := cfgFile
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultConfigName+".yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration. Unparseable configuration
// falls back to defaults rather than failing the run.
func GetConfig() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return &Config{
			Binary:     DefaultBinary,
			Doxyfile:   DefaultDoxyfile,
			OutputDir:  DefaultOutputDir,
			HTMLDir:    DefaultHTMLDir,
			IndexFile:  DefaultIndexFile,
			AutoOpen:   DefaultAutoOpen,
			WatchPaths: DefaultWatchPaths,
		}
	}
	return cfg
}

// SaveConfig persists the current configuration to the loaded config file.
func SaveConfig() error {
	return viper.WriteConfig()
}

// Keys returns the settable configuration keys in alphabetical order.
func Keys() []string {
	keys := []string{
		"auto_open",
		"binary",
		"doxyfile",
		"html_dir",
		"index_file",
		"output_dir",
		"watch_paths",
	}
	sort.Strings(keys)
	return keys
}

// IsValidKey reports whether the key is settable via the config command.
func IsValidKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Set parses and stores a single configuration value. auto_open accepts
// boolean literals; watch_paths accepts a comma-separated list.
func Set(key, value string) error {
	if !IsValidKey(key) {
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}

	switch key {
	case "auto_open":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for auto_open: %q", value)
		}
		viper.Set(key, b)
	case "watch_paths":
		var paths []string
		for _, p := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				paths = append(paths, trimmed)
			}
		}
		viper.Set(key, paths)
	default:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("value for %s cannot be empty", key)
		}
		viper.Set(key, value)
	}
	return nil
}

// Get returns the string form of a configuration value.
func Get(key string) (string, error) {
	if !IsValidKey(key) {
		return "", fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}

	switch key {
	case "auto_open":
		return strconv.FormatBool(viper.GetBool(key)), nil
	case "watch_paths":
		return strings.Join(viper.GetStringSlice(key), ","), nil
	default:
		return viper.GetString(key), nil
	}
}
