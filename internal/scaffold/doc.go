// Package scaffold builds a multi-component project tree from static
// templates. It powers the "project-tools build" command: a root skeleton
// (assets, temp, logs, shared utilities, config, ignore file, readme, guide,
// logging and settings modules) followed by one code/tests subtree per
// component. Every write is guarded so that files which already hold content
// are never overwritten, which makes repeated builds safe.
package scaffold
