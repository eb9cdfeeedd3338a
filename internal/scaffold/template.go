package scaffold

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Replacement is a literal placeholder and the text that replaces it.
type Replacement struct {
	Placeholder string
	Value       string
}

// Replacements is an ordered list of substitutions.
type Replacements []Replacement

// Apply replaces every occurrence of each placeholder in turn. Later
// replacements operate on text already rewritten by earlier ones.
func (r Replacements) Apply(text string) string {
	for _, rep := range r {
		text = strings.ReplaceAll(text, rep.Placeholder, rep.Value)
	}
	return text
}

// CopyOptions tunes CopyFromTemplate. The zero value substitutes nothing,
// appends nothing and only writes empty targets.
type CopyOptions struct {
	EndText      string
	Replacements Replacements
	// Overwrite disables the empty-target guard.
	Overwrite bool
}

// CopyFromTemplate renders the template at templatePath into target. The
// target is created if missing. Unless opts.Overwrite is set, a target that
// already has content is left untouched. Reports whether target was written.
func (b *Builder) CopyFromTemplate(target, templatePath string, opts CopyOptions) (bool, error) {
	empty, err := b.EnsureEmptyFile(target)
	if err != nil {
		return false, err
	}
	if !opts.Overwrite && !empty {
		b.log.Debug("preserved existing file", "path", target)
		b.result.Preserved = append(b.result.Preserved, target)
		return false, nil
	}

	raw, err := afero.ReadFile(b.templates, templatePath)
	if err != nil {
		return false, fmt.Errorf("reading template %s: %w", templatePath, err)
	}

	text := opts.Replacements.Apply(string(raw)) + opts.EndText
	if err := b.writeFile(target, text); err != nil {
		return false, err
	}
	return true, nil
}

// writeFile truncates path and writes text to it.
func (b *Builder) writeFile(path, text string) error {
	if err := afero.WriteFile(b.fs, path, []byte(text), FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	b.log.Debug("wrote file", "path", path)
	b.result.Written = append(b.result.Written, path)
	return nil
}
