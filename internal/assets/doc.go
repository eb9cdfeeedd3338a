// Package assets bundles the default project templates into the binary via
// //go:embed. The templates are served from <install dir>/assets when that
// folder is missing on disk, and can be exported for local customisation.
package assets
