package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pippidis/project-tools/internal/branding"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized settings keys.
const (
	KeyLogLevel     = "log_level"
	KeyTemplatesDir = "templates_dir"
	KeyComponents   = "components"
)

// Keys lists the settings accepted by Set.
var Keys = []string{KeyComponents, KeyLogLevel, KeyTemplatesDir}

// Dir returns the path to the settings directory (~/.project-tools/). The
// PROJECT_TOOLS_HOME environment variable takes precedence.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a settings value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Components returns the default component list from the settings, or nil
// when none is configured. A setting that is present but empty yields an
// empty, non-nil list. Both YAML lists and comma-separated strings are
// accepted.
func Components() []string {
	if !viper.IsSet(KeyComponents) {
		return nil
	}
	names := []string{}
	for _, item := range viper.GetStringSlice(KeyComponents) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}

// Set validates key, stores value and rewrites the settings file.
func Set(key, value string) error {
	if !isKnown(key) {
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if key == KeyLogLevel {
		if _, err := log.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing %s: %w", FilePath(), err)
	}
	return nil
}

func isKnown(key string) bool {
	return lo.Contains(Keys, key)
}
