//go:build integration

package integration_test

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestFullFlowBuildAndRerun builds a project in the working directory, edits
// it, and checks a second build only fills in what is missing.
func TestFullFlowBuildAndRerun(t *testing.T) {
	env := setupTestEnv(t)
	root := env.ProjectDir

	env.mustRun(t, "build", "-c", "library", "-c", "gui")

	for _, f := range []string{
		".gitignore",
		"readme.md",
		"main.py",
		"project_guide.md",
		"assets/.gitkeep",
		"config/logging.yaml",
		"project_utils/logging.py",
		"project_utils/settings.py",
		"project_utils/settings.yaml",
		"library/__init__.py",
		"library/code/utils.py",
		"library/tests/conftest.py",
		"library/tests/test_utils.py",
		"gui/tests/test_utils.py",
	} {
		assertFileExists(t, filepath.Join(root, f))
	}
	assertDirExists(t, filepath.Join(root, "temp"))
	assertDirExists(t, filepath.Join(root, "logs"))
	assertNotExists(t, filepath.Join(root, "module_1"))

	if got := readFile(t, filepath.Join(root, "readme.md")); got != "# "+filepath.Base(root)+"\n" {
		t.Errorf("readme = %q", got)
	}
	if got := readFile(t, filepath.Join(root, ".gitignore")); !strings.HasSuffix(got, "\ntemp/\nlogs/\n") {
		t.Errorf(".gitignore = %q", got)
	}
	for _, f := range []string{"project_utils/logging.py", "library/tests/conftest.py", "library/code/utils.py"} {
		if content := readFile(t, filepath.Join(root, f)); strings.Contains(content, "XX") {
			t.Errorf("%s still holds a placeholder:\n%s", f, content)
		}
	}

	// Edit a file and add a module, then rebuild.
	writeFile(t, filepath.Join(root, "readme.md"), "# Mine\n")
	writeFile(t, filepath.Join(root, "library", "code", "parser.py"), "def parse():\n    pass\n")
	before := tree(t, root)

	env.mustRun(t, "build", "-c", "library", "-c", "gui")
	after := tree(t, root)

	if got := after["readme.md"]; got != "# Mine\n" {
		t.Errorf("readme overwritten: %q", got)
	}
	stub := filepath.Join("library", "tests", "test_parser.py")
	if !strings.Contains(after[stub], "from ..code.parser import *") {
		t.Errorf("%s = %q", stub, after[stub])
	}
	delete(after, stub)
	if !reflect.DeepEqual(before, after) {
		t.Error("rebuild changed existing files")
	}
}

func TestBuildWithProjectFileAndSettings(t *testing.T) {
	env := setupTestEnv(t)
	root := env.ProjectDir

	env.mustRun(t, "config", "set", "components", "core")
	writeFile(t, filepath.Join(root, "project-tools.yaml"), `components:
  - api
  - worker
overrides:
  test_file_prefix: check_
`)

	out := env.mustRun(t, "validate")
	if !strings.Contains(out, "is valid") {
		t.Errorf("validate output = %q", out)
	}

	env.mustRun(t, "build")
	assertFileExists(t, filepath.Join(root, "api", "tests", "check_utils.py"))
	assertFileExists(t, filepath.Join(root, "worker", "tests", "check_utils.py"))
	assertNotExists(t, filepath.Join(root, "core"))
}

func TestBuildFailsOnInvalidProjectFile(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, "project-tools.yaml"), "templates:\n  banner: ./banner.txt\n")

	if out, err := env.run(t, "build"); err == nil {
		t.Fatalf("expected build to fail, output:\n%s", out)
	}
	assertNotExists(t, filepath.Join(env.ProjectDir, "readme.md"))
}

func TestExportedTemplatesDriveBuild(t *testing.T) {
	env := setupTestEnv(t)
	templates := filepath.Join(env.HomeDir, "templates")

	env.mustRun(t, "assets", "export", templates)
	writeFile(t, filepath.Join(templates, "template_guide.md"), "# Team guide\n")
	env.mustRun(t, "config", "set", "templates_dir", templates)

	project := filepath.Join(env.ProjectDir, "demo")
	env.mustRun(t, "build", project)
	if got := readFile(t, filepath.Join(project, "project_guide.md")); got != "# Team guide\n" {
		t.Errorf("project_guide.md = %q", got)
	}
}
