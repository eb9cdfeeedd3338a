package scaffold

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Placeholders understood by the root-level templates.
const (
	PlaceholderLogConfigPath   = "XX_LOG_CONFIG_PATH_XX"
	PlaceholderLogStoragePath  = "XX_LOG_STORAGE_PATH_XX"
	PlaceholderLogFileName     = "XX_LOGFILE_DEFAULT_NAME_XX"
	PlaceholderLogFilePrefix   = "XX_LOG_FILE_PREFIX_XX"
	PlaceholderLoggingSetup    = "XX_LOGGING_SETUP_XX"
	PlaceholderLoggingExample  = "XX_LOGGING_EXAMPLE_XX"
	PlaceholderModuleReference = "XXXX"
	PlaceholderSymbol          = "YYYY"
)

// Generated shared module names inside the common folder.
const (
	loggingModuleFile  = "logging.py"
	settingsModuleFile = "settings.py"
)

// Result holds the outcome of a build.
type Result struct {
	Root string
	// Written lists files whose content was written, in build order.
	Written []string
	// Preserved lists template targets left alone because they had content.
	Preserved []string
}

// Builder materializes a project tree described by a Config. A Builder is
// not safe for concurrent use.
type Builder struct {
	cfg       *Config
	fs        afero.Fs
	templates afero.Fs
	log       *log.Logger

	ignored []string
	result  *Result
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithFs sets the filesystem the project is written to.
func WithFs(fs afero.Fs) BuilderOption {
	return func(b *Builder) { b.fs = fs }
}

// WithTemplateFs sets the filesystem templates are read from. It defaults
// to the output filesystem.
func WithTemplateFs(fs afero.Fs) BuilderOption {
	return func(b *Builder) { b.templates = fs }
}

// WithLogger sets the logger used to report progress.
func WithLogger(l *log.Logger) BuilderOption {
	return func(b *Builder) { b.log = l }
}

// New returns a Builder for cfg writing to the OS filesystem by default.
func New(cfg *Config, opts ...BuilderOption) *Builder {
	b := &Builder{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		result: &Result{Root: cfg.Root},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.templates == nil {
		b.templates = b.fs
	}
	if b.log == nil {
		b.log = log.New(io.Discard)
	}
	return b
}

// Config returns the configuration the builder was created with.
func (b *Builder) Config() *Config { return b.cfg }

// Result returns what the builder has written or preserved so far.
func (b *Builder) Result() *Result { return b.result }

// Ignored returns the folders registered for the ignore file so far.
func (b *Builder) Ignored() []string {
	return append([]string{}, b.ignored...)
}

// Build creates the root skeleton and then every configured component. It
// stops at the first error; whatever was written before stays on disk and a
// rerun is safe.
func (b *Builder) Build() (*Result, error) {
	b.ignored = nil
	b.result = &Result{Root: b.cfg.Root}

	if err := b.buildRoot(); err != nil {
		return b.result, err
	}
	for _, name := range b.cfg.Components {
		if err := b.BuildComponent(name); err != nil {
			return b.result, fmt.Errorf("building component %s: %w", name, err)
		}
	}
	return b.result, nil
}

// buildRoot creates the shared project skeleton. Ignored folders must all be
// registered before the ignore file is rendered.
func (b *Builder) buildRoot() error {
	c := b.cfg
	root := c.Root
	assetsPath := filepath.Join(root, c.AssetsFolderName)
	tempPath := filepath.Join(root, c.TempFolderName)
	logsPath := filepath.Join(root, c.LogsFolderName)
	commonPath := filepath.Join(root, c.CommonFolderName)
	configPath := filepath.Join(root, c.ConfigFolderName)

	if err := b.EnsureFolder(root, false); err != nil {
		return err
	}
	if err := b.EnsureFolder(assetsPath, false); err != nil {
		return err
	}
	if _, err := b.EnsureEmptyFile(filepath.Join(assetsPath, c.KeepFileName)); err != nil {
		return err
	}
	if err := b.EnsureFolder(tempPath, true); err != nil {
		return err
	}
	if err := b.EnsureFolder(logsPath, true); err != nil {
		return err
	}
	if err := b.EnsureFolder(commonPath, false); err != nil {
		return err
	}
	if err := b.EnsureFolder(configPath, false); err != nil {
		return err
	}

	if err := b.writeIgnoreFile(); err != nil {
		return err
	}
	if err := b.writeReadme(root); err != nil {
		return err
	}
	if _, err := b.EnsureEmptyFile(filepath.Join(root, c.EntryPointFileName)); err != nil {
		return err
	}
	if _, err := b.CopyFromTemplate(filepath.Join(root, c.ProjectGuideFileName), c.ProjectGuideTemplate, CopyOptions{}); err != nil {
		return err
	}

	if _, err := b.CopyFromTemplate(filepath.Join(configPath, c.LoggingConfigFileName), c.LogConfigTemplate, CopyOptions{}); err != nil {
		return err
	}
	logging := Replacements{
		{PlaceholderLogConfigPath, fmt.Sprintf("'%s' / '%s'", c.ConfigFolderName, c.LoggingConfigFileName)},
		{PlaceholderLogStoragePath, fmt.Sprintf("'%s'", c.LogsFolderName)},
		{PlaceholderLogFileName, c.LogFileName},
		{PlaceholderLogFilePrefix, ""},
	}
	if _, err := b.CopyFromTemplate(filepath.Join(commonPath, loggingModuleFile), c.LogUtilsTemplate, CopyOptions{Replacements: logging}); err != nil {
		return err
	}

	if _, err := b.CopyFromTemplate(filepath.Join(commonPath, settingsModuleFile), c.SettingsUtilsTemplate, CopyOptions{}); err != nil {
		return err
	}
	if _, err := b.CopyFromTemplate(filepath.Join(commonPath, c.SettingsYAMLName), c.SettingsYAMLTemplate, CopyOptions{}); err != nil {
		return err
	}
	return nil
}

// writeIgnoreFile renders the ignore template followed by one "<name>/" line
// per registered folder.
func (b *Builder) writeIgnoreFile() error {
	lines := lo.Map(b.ignored, func(p string, _ int) string {
		return filepath.Base(p) + "/\n"
	})
	endText := "\n" + strings.Join(lines, "")
	target := filepath.Join(b.cfg.Root, b.cfg.IgnoreFileName)
	_, err := b.CopyFromTemplate(target, b.cfg.GitignoreTemplate, CopyOptions{EndText: endText})
	return err
}

// writeReadme writes a heading named after folder into its readme, unless
// the readme already has content.
func (b *Builder) writeReadme(folder string) error {
	path := filepath.Join(folder, b.cfg.ReadmeFileName)
	empty, err := b.EnsureEmptyFile(path)
	if err != nil {
		return err
	}
	if !empty {
		b.result.Preserved = append(b.result.Preserved, path)
		return nil
	}
	return b.writeFile(path, fmt.Sprintf("# %s\n", folderName(folder)))
}

func folderName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Base(path)
}
