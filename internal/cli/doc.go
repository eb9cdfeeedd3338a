// Package cli defines the Cobra command tree for the project-tools CLI. Each
// file registers one top-level command (build, config, validate, assets,
// version). Commands delegate to internal packages and only handle flag
// parsing, configuration layering and output formatting.
package cli
