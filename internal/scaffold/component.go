package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Symbols substituted into generated test files.
const (
	ExampleFunction = "example_function"
	WildcardSymbol  = "*"
)

// BuildComponent creates the subtree for one component under the root:
// package markers, the utils module, the test configuration and one test
// stub per source file already present in the code folder.
func (b *Builder) BuildComponent(name string) error {
	c := b.cfg
	b.log.Info("building component", "name", name)

	componentPath := filepath.Join(c.Root, name)
	codePath := filepath.Join(componentPath, c.ComponentCodeFolderName)
	testPath := filepath.Join(componentPath, c.TestFolderName)

	for _, dir := range []string{componentPath, codePath, testPath} {
		if err := b.EnsureFolder(dir, false); err != nil {
			return err
		}
	}
	for _, dir := range []string{componentPath, codePath, testPath} {
		if _, err := b.EnsureEmptyFile(filepath.Join(dir, c.InitFileName)); err != nil {
			return err
		}
	}

	utilsPath := filepath.Join(codePath, c.UtilsFileName)
	utils := Replacements{
		{PlaceholderLoggingSetup, fmt.Sprintf("from %s.logging import setup_logging\nlogger = setup_logging(__name__)", c.CommonFolderName)},
		{PlaceholderLoggingExample, "logger.error('This is an Error example')"},
	}
	if _, err := b.CopyFromTemplate(utilsPath, c.UtilsTemplate, CopyOptions{Replacements: utils}); err != nil {
		return err
	}

	sources, err := b.sourceFiles(codePath)
	if err != nil {
		return err
	}

	utilsStem := stem(c.UtilsFileName)
	conftest := Replacements{
		{PlaceholderModuleReference, b.moduleReference(utilsStem)},
		{PlaceholderSymbol, ExampleFunction},
	}
	if _, err := b.CopyFromTemplate(filepath.Join(testPath, c.ConftestFileName), c.ConftestTemplate, CopyOptions{Replacements: conftest}); err != nil {
		return err
	}

	for _, source := range sources {
		s := stem(source)
		symbol := WildcardSymbol
		if s == utilsStem {
			symbol = ExampleFunction
		}
		stub := Replacements{
			{PlaceholderModuleReference, b.moduleReference(s)},
			{PlaceholderSymbol, symbol},
		}
		target := filepath.Join(testPath, c.TestFilePrefix+s+filepath.Ext(source))
		if _, err := b.CopyFromTemplate(target, c.TestFileTemplate, CopyOptions{Replacements: stub}); err != nil {
			return err
		}
	}
	return nil
}

// sourceFiles lists, in lexical order, the regular files directly inside
// codePath that share the utils module's extension, excluding the package
// marker.
func (b *Builder) sourceFiles(codePath string) ([]string, error) {
	entries, err := afero.ReadDir(b.fs, codePath)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", codePath, err)
	}
	ext := filepath.Ext(b.cfg.UtilsFileName)
	files := lo.Filter(entries, func(e os.FileInfo, _ int) bool {
		return e.Mode().IsRegular() && e.Name() != b.cfg.InitFileName && filepath.Ext(e.Name()) == ext
	})
	return lo.Map(files, func(e os.FileInfo, _ int) string { return e.Name() }), nil
}

// moduleReference is the relative import of a module in the code folder as
// seen from the tests folder.
func (b *Builder) moduleReference(module string) string {
	return ".." + b.cfg.ComponentCodeFolderName + "." + module
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
