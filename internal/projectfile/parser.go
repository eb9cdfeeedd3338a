package projectfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrInvalid is returned by Load when a project file fails schema validation.
var ErrInvalid = errors.New("invalid project file")

// Find returns the project file path inside root and whether it exists.
func Find(root string) (string, bool) {
	path := filepath.Join(root, DefaultFileName)
	info, err := os.Stat(path)
	return path, err == nil && !info.IsDir()
}

// Parse reads a project file without validating it.
func Parse(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseBytes(data, path)
}

// Load reads a project file, validates it against the schema and resolves
// relative template paths, including *_template_path overrides, against the
// file's directory.
func Load(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w %s: %s", ErrInvalid, path, result.Summary())
	}

	f, err := parseBytes(data, path)
	if err != nil {
		return nil, err
	}
	f.resolveTemplates(filepath.Dir(path))
	return f, nil
}

func parseBytes(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	f.Path = path
	return &f, nil
}

// TemplatePathSuffix marks override keys that name a template file.
const TemplatePathSuffix = "_template_path"

// resolveTemplates makes relative template paths, from both the templates
// map and *_template_path overrides, relative to dir.
func (f *File) resolveTemplates(dir string) {
	for kind, p := range f.Templates {
		f.Templates[kind] = resolvePath(dir, p)
	}
	for key, p := range f.Overrides {
		if strings.HasSuffix(key, TemplatePathSuffix) {
			f.Overrides[key] = resolvePath(dir, p)
		}
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Summary joins the issues into a single line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
