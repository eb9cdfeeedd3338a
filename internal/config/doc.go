// Package config manages user-level settings stored at
// ~/.project-tools/config.yaml and PROJECT_TOOLS_* environment variables:
// the default log level, a directory of customised templates and a default
// component list.
package config
