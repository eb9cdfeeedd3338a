package assets

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/pippidis/project-tools/internal/scaffold"
)

// Templates holds the default template files.
//
//go:embed templates
var Templates embed.FS

const templatesDir = "templates"

// Names returns the bundled template file names in lexical order.
func Names() []string {
	entries, err := fs.ReadDir(Templates, templatesDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Read returns the content of a bundled template.
func Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(Templates, path.Join(templatesDir, name))
	if err != nil {
		return nil, fmt.Errorf("reading bundled template %s: %w", name, err)
	}
	return data, nil
}

// Bundled returns an in-memory filesystem holding every bundled template
// under dir.
func Bundled(dir string) (afero.Fs, error) {
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(dir, scaffold.DirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, name := range Names() {
		data, err := Read(name)
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(mem, filepath.Join(dir, name), data, scaffold.FilePerm); err != nil {
			return nil, fmt.Errorf("staging bundled template %s: %w", name, err)
		}
	}
	return mem, nil
}

// Overlay returns a read-only view of the OS filesystem in which the bundled
// templates appear under <installDir>/assets when no file exists there on
// disk. Files on disk always win.
func Overlay(installDir string) (afero.Fs, error) {
	base, err := Bundled(filepath.Join(installDir, scaffold.AssetsDirName))
	if err != nil {
		return nil, err
	}
	return afero.NewReadOnlyFs(afero.NewCopyOnWriteFs(base, afero.NewOsFs())), nil
}

// Export writes the bundled templates into dir on fsys. Templates that
// already have content are kept unless force is set. It returns the files
// written.
func Export(fsys afero.Fs, dir string, force bool, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bundled, err := Bundled(dir)
	if err != nil {
		return nil, err
	}

	b := scaffold.New(scaffold.NewConfig(dir),
		scaffold.WithFs(fsys),
		scaffold.WithTemplateFs(bundled),
		scaffold.WithLogger(logger),
	)
	if err := b.EnsureFolder(dir, false); err != nil {
		return nil, err
	}
	for _, name := range Names() {
		target := filepath.Join(dir, name)
		if _, err := b.CopyFromTemplate(target, target, scaffold.CopyOptions{Overwrite: force}); err != nil {
			return nil, err
		}
	}
	return b.Result().Written, nil
}
