package scaffold

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Default names used when building a project.
const (
	DefaultComponentName           = "module_1"
	DefaultInitFileName            = "__init__.py"
	DefaultReadmeFileName          = "readme.md"
	DefaultTestFolderName          = "tests"
	DefaultLogsFolderName          = "logs"
	DefaultTempFolderName          = "temp"
	DefaultCommonFolderName        = "project_utils"
	DefaultAssetsFolderName        = "assets"
	DefaultUtilsFileName           = "utils.py"
	DefaultComponentCodeFolderName = "code"
	DefaultLoggingConfigFileName   = "logging.yaml"
	DefaultConfigFolderName        = "config"
	DefaultLogFileName             = "app.log"
	DefaultSettingsYAMLName        = "settings.yaml"
	DefaultTestFilePrefix          = "test_"
	DefaultEntryPointFileName      = "main.py"
	DefaultProjectGuideFileName    = "project_guide.md"
	DefaultConftestFileName        = "conftest.py"
	DefaultKeepFileName            = ".gitkeep"
	DefaultIgnoreFileName          = ".gitignore"
)

// TemplateKind identifies one of the template assets a build consumes.
type TemplateKind string

const (
	TemplateGitignore     TemplateKind = "gitignore"
	TemplateUtils         TemplateKind = "utils"
	TemplateConftest      TemplateKind = "conftest"
	TemplateTestFile      TemplateKind = "test_file"
	TemplateProjectGuide  TemplateKind = "project_guide"
	TemplateLogUtils      TemplateKind = "log_utils"
	TemplateLogConfig     TemplateKind = "log_config"
	TemplateSettingsUtils TemplateKind = "settings_utils"
	TemplateSettingsYAML  TemplateKind = "settings_yaml"
)

// AssetsDirName is the folder next to the executable holding the default templates.
const AssetsDirName = "assets"

// templateFiles maps each template kind to its file name inside AssetsDirName.
var templateFiles = map[TemplateKind]string{
	TemplateGitignore:     "template_gitignore.txt",
	TemplateUtils:         "template_utils.txt",
	TemplateConftest:      "template_conftest.txt",
	TemplateTestFile:      "template_test_file.txt",
	TemplateProjectGuide:  "template_guide.md",
	TemplateLogConfig:     "template_logging_config.yaml",
	TemplateLogUtils:      "template_utils_logging.txt",
	TemplateSettingsUtils: "template_settings.txt",
	TemplateSettingsYAML:  "template_settings_yaml.yaml",
}

// TemplateKinds returns every template kind in a stable order.
func TemplateKinds() []TemplateKind {
	kinds := make([]TemplateKind, 0, len(templateFiles))
	for k := range templateFiles {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// TemplateFileName returns the default file name of a template kind, or ""
// if the kind is unknown.
func TemplateFileName(kind TemplateKind) string {
	return templateFiles[kind]
}

// Config is the fully resolved configuration of a build.
type Config struct {
	Root       string
	Components []string

	// Template asset paths.
	GitignoreTemplate     string
	UtilsTemplate         string
	ConftestTemplate      string
	TestFileTemplate      string
	ProjectGuideTemplate  string
	LogUtilsTemplate      string
	LogConfigTemplate     string
	SettingsUtilsTemplate string
	SettingsYAMLTemplate  string

	// Conventional names.
	InitFileName            string
	ReadmeFileName          string
	TestFolderName          string
	LogsFolderName          string
	TempFolderName          string
	AssetsFolderName        string
	CommonFolderName        string
	UtilsFileName           string
	ComponentCodeFolderName string
	ConfigFolderName        string
	LoggingConfigFileName   string
	LogFileName             string
	SettingsYAMLName        string
	TestFilePrefix          string
	EntryPointFileName      string
	ProjectGuideFileName    string
	ConftestFileName        string
	KeepFileName            string
	IgnoreFileName          string

	// Extra holds override keys that match no known field.
	Extra map[string]string
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithRoot sets the directory the project is built in.
func WithRoot(root string) Option {
	return func(c *Config) { c.Root = root }
}

// WithComponents sets the component list. An empty list is kept as is and
// produces a build without component subtrees.
func WithComponents(names ...string) Option {
	return func(c *Config) { c.Components = append([]string{}, names...) }
}

// WithTemplate overrides the path of a single template.
func WithTemplate(kind TemplateKind, path string) Option {
	return func(c *Config) {
		if p := c.templateField(kind); p != nil {
			*p = path
		}
	}
}

// WithOverride applies a single named override. See Config.Set.
func WithOverride(key, value string) Option {
	return func(c *Config) { c.Set(key, value) }
}

// WithOverrides applies named overrides in sorted key order.
func WithOverrides(overrides map[string]string) Option {
	return func(c *Config) {
		keys := make([]string, 0, len(overrides))
		for k := range overrides {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.Set(k, overrides[k])
		}
	}
}

// NewConfig returns a Config whose paths default to installDir and whose
// names default to the constant table, then applies opts in order.
func NewConfig(installDir string, opts ...Option) *Config {
	assets := filepath.Join(installDir, AssetsDirName)
	c := &Config{
		Root:       installDir,
		Components: []string{DefaultComponentName},

		GitignoreTemplate:     filepath.Join(assets, templateFiles[TemplateGitignore]),
		UtilsTemplate:         filepath.Join(assets, templateFiles[TemplateUtils]),
		ConftestTemplate:      filepath.Join(assets, templateFiles[TemplateConftest]),
		TestFileTemplate:      filepath.Join(assets, templateFiles[TemplateTestFile]),
		ProjectGuideTemplate:  filepath.Join(assets, templateFiles[TemplateProjectGuide]),
		LogUtilsTemplate:      filepath.Join(assets, templateFiles[TemplateLogUtils]),
		LogConfigTemplate:     filepath.Join(assets, templateFiles[TemplateLogConfig]),
		SettingsUtilsTemplate: filepath.Join(assets, templateFiles[TemplateSettingsUtils]),
		SettingsYAMLTemplate:  filepath.Join(assets, templateFiles[TemplateSettingsYAML]),

		InitFileName:            DefaultInitFileName,
		ReadmeFileName:          DefaultReadmeFileName,
		TestFolderName:          DefaultTestFolderName,
		LogsFolderName:          DefaultLogsFolderName,
		TempFolderName:          DefaultTempFolderName,
		AssetsFolderName:        DefaultAssetsFolderName,
		CommonFolderName:        DefaultCommonFolderName,
		UtilsFileName:           DefaultUtilsFileName,
		ComponentCodeFolderName: DefaultComponentCodeFolderName,
		ConfigFolderName:        DefaultConfigFolderName,
		LoggingConfigFileName:   DefaultLoggingConfigFileName,
		LogFileName:             DefaultLogFileName,
		SettingsYAMLName:        DefaultSettingsYAMLName,
		TestFilePrefix:          DefaultTestFilePrefix,
		EntryPointFileName:      DefaultEntryPointFileName,
		ProjectGuideFileName:    DefaultProjectGuideFileName,
		ConftestFileName:        DefaultConftestFileName,
		KeepFileName:            DefaultKeepFileName,
		IgnoreFileName:          DefaultIgnoreFileName,

		Extra: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InstallDir returns the directory holding the running executable, with
// symlinks resolved. It falls back to the working directory, then to ".".
func InstallDir() string {
	return installDir(os.Executable, os.Getwd)
}

func installDir(executable, getwd func() (string, error)) string {
	exe, err := executable()
	if err != nil {
		if wd, err := getwd(); err == nil && wd != "" {
			return wd
		}
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Set applies a named override. Known keys set the matching field,
// "components" takes a comma-separated list, anything else is stored in
// Extra. The last call for a key wins and values are not validated.
func (c *Config) Set(key, value string) {
	switch key {
	case "root":
		c.Root = value
		return
	case "components":
		c.Components = splitList(value)
		return
	}
	if p := c.field(key); p != nil {
		*p = value
		return
	}
	if c.Extra == nil {
		c.Extra = map[string]string{}
	}
	c.Extra[key] = value
}

// Get returns the value of a named setting and whether it is set.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case "root":
		return c.Root, true
	case "components":
		return strings.Join(c.Components, ","), true
	}
	if p := c.field(key); p != nil {
		return *p, true
	}
	v, ok := c.Extra[key]
	return v, ok
}

// Keys returns every recognized override key in sorted order.
func Keys() []string {
	var c Config
	keys := []string{"root", "components"}
	for k := range c.fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TemplatePath returns the configured path of a template kind.
func (c *Config) TemplatePath(kind TemplateKind) string {
	if p := c.templateField(kind); p != nil {
		return *p
	}
	return ""
}

func (c *Config) field(key string) *string {
	return c.fields()[key]
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"gitignore_template_path":      &c.GitignoreTemplate,
		"utils_template_path":          &c.UtilsTemplate,
		"conftest_template_path":       &c.ConftestTemplate,
		"test_file_template_path":      &c.TestFileTemplate,
		"project_guide_template_path":  &c.ProjectGuideTemplate,
		"log_utils_template_path":      &c.LogUtilsTemplate,
		"log_config_template_path":     &c.LogConfigTemplate,
		"settings_utils_template_path": &c.SettingsUtilsTemplate,
		"settings_yaml_template_path":  &c.SettingsYAMLTemplate,

		"init_file_name":             &c.InitFileName,
		"readme_file_name":           &c.ReadmeFileName,
		"test_folder_name":           &c.TestFolderName,
		"logs_folder_name":           &c.LogsFolderName,
		"temp_folder_name":           &c.TempFolderName,
		"assets_folder_name":         &c.AssetsFolderName,
		"common_folder_name":         &c.CommonFolderName,
		"utils_file_name":            &c.UtilsFileName,
		"component_code_folder_name": &c.ComponentCodeFolderName,
		"config_folder_name":         &c.ConfigFolderName,
		"logging_config_file_name":   &c.LoggingConfigFileName,
		"log_file_name":              &c.LogFileName,
		"settings_yaml_name":         &c.SettingsYAMLName,
		"test_file_prefix":           &c.TestFilePrefix,
		"entry_point_file_name":      &c.EntryPointFileName,
		"project_guide_file_name":    &c.ProjectGuideFileName,
		"conftest_file_name":         &c.ConftestFileName,
		"keep_file_name":             &c.KeepFileName,
		"ignore_file_name":           &c.IgnoreFileName,
	}
}

func (c *Config) templateField(kind TemplateKind) *string {
	if _, ok := templateFiles[kind]; !ok {
		return nil
	}
	return c.field(string(kind) + "_template_path")
}

func splitList(value string) []string {
	names := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
