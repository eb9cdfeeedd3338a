// Package branding holds the CLI identity: command name, product name, the
// settings dot-directory and the environment variable prefix. The values are
// read from the embedded branding.yaml.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Identity is the decoded branding.yaml.
type Identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

// fallback fills any field branding.yaml leaves empty.
var fallback = Identity{
	CLIName:     "project-tools",
	DisplayName: "Project Tools",
	Description: "Scaffold multi-component projects from templates",
	HomeDir:     ".project-tools",
	EnvPrefix:   "PROJECT_TOOLS",
}

// Get returns the identity, decoding it on first use.
var Get = sync.OnceValue(func() Identity {
	id := fallback
	_ = yaml.Unmarshal(rawBranding, &id)
	if id.CLIName == "" {
		id.CLIName = fallback.CLIName
	}
	if id.DisplayName == "" {
		id.DisplayName = id.CLIName
	}
	if id.HomeDir == "" {
		id.HomeDir = "." + id.CLIName
	}
	if id.EnvPrefix == "" {
		id.EnvPrefix = strings.ToUpper(strings.ReplaceAll(id.CLIName, "-", "_"))
	}
	return id
})

// CLIName returns the root command name (e.g., "project-tools").
func CLIName() string { return Get().CLIName }

// DisplayName returns the human-readable product name (e.g., "Project Tools").
func DisplayName() string { return Get().DisplayName }

// Description returns the short product description shown in help output.
func Description() string { return Get().Description }

// HomeDir returns the settings dot-directory under $HOME (e.g., ".project-tools").
func HomeDir() string { return Get().HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PROJECT_TOOLS").
func EnvPrefix() string { return Get().EnvPrefix }

// EnvVar returns the prefixed, upper-cased variable name, so EnvVar("home")
// is "PROJECT_TOOLS_HOME".
func EnvVar(suffix string) string {
	return EnvPrefix() + "_" + strings.ToUpper(suffix)
}
