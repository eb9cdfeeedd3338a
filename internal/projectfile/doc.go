// Package projectfile reads and validates project-tools.yaml, the optional
// per-project file that lists components, template overrides and name
// overrides for a build. Files are validated against an embedded JSON
// schema and may pin the tool version with a semver constraint.
package projectfile
