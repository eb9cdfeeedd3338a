package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testInstallDir = "/opt/project-tools"
	testRoot       = "/work/demo"
)

// fixtureTemplates are small stand-ins for the bundled templates that keep
// every placeholder visible in assertions.
var fixtureTemplates = map[TemplateKind]string{
	TemplateGitignore:     "*.pyc\n",
	TemplateUtils:         "XX_LOGGING_SETUP_XX\n\ndef example_function():\n    XX_LOGGING_EXAMPLE_XX\n",
	TemplateConftest:      "from XXXX import YYYY\n",
	TemplateTestFile:      "from XXXX import YYYY\n",
	TemplateProjectGuide:  "# Guide\n",
	TemplateLogConfig:     "version: 1\n",
	TemplateLogUtils:      "CONFIG = ROOT / XX_LOG_CONFIG_PATH_XX\nLOGS = ROOT / XX_LOG_STORAGE_PATH_XX\nNAME = 'XX_LOG_FILE_PREFIX_XX' + 'XX_LOGFILE_DEFAULT_NAME_XX'\n",
	TemplateSettingsUtils: "def get_setting(key):\n    pass\n",
	TemplateSettingsYAML:  "app:\n  name: demo\n",
}

// newMemBuilder returns a builder on an in-memory filesystem holding the
// fixture templates at their default install location.
func newMemBuilder(t *testing.T, opts ...Option) (*Builder, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for kind, content := range fixtureTemplates {
		path := filepath.Join(testInstallDir, AssetsDirName, TemplateFileName(kind))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), FilePerm))
	}
	cfg := NewConfig(testInstallDir, append([]Option{WithRoot(testRoot)}, opts...)...)
	return New(cfg, WithFs(fs)), fs
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), DirPerm))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), FilePerm))
}

// snapshot maps every file under root to its content.
func snapshot(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files[path] = readFile(t, fs, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}
