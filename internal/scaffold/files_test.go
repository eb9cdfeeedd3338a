package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureEmptyFile(t *testing.T) {
	b, fs := newMemBuilder(t)
	path := filepath.Join(testRoot, "notes.txt")
	require.NoError(t, fs.MkdirAll(testRoot, DirPerm))

	empty, err := b.EnsureEmptyFile(path)
	require.NoError(t, err)
	assert.True(t, empty, "new file should be empty")

	// Calling again on an empty file keeps reporting empty.
	empty, err = b.EnsureEmptyFile(path)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, afero.WriteFile(fs, path, []byte("keep me"), FilePerm))
	empty, err = b.EnsureEmptyFile(path)
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, "keep me", readFile(t, fs, path))
}

func TestEnsureEmptyFile_DirectoryIsInvalidTarget(t *testing.T) {
	b, fs := newMemBuilder(t)
	dir := filepath.Join(testRoot, "folder")
	require.NoError(t, fs.MkdirAll(dir, DirPerm))

	_, err := b.EnsureEmptyFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	ok, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, ok, "directory must survive")
}

func TestEnsureEmptyFile_MissingParent(t *testing.T) {
	b := New(NewConfig(t.TempDir()))
	path := filepath.Join(t.TempDir(), "missing", "file.txt")

	_, err := b.EnsureEmptyFile(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTarget)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureEmptyFile_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o500))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	b := New(NewConfig(dir))
	_, err := b.EnsureEmptyFile(filepath.Join(locked, "file.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestEnsureFolder_Idempotent(t *testing.T) {
	dir := t.TempDir()
	b := New(NewConfig(dir))
	path := filepath.Join(dir, "a", "b", "c")

	require.NoError(t, b.EnsureFolder(path, false))
	require.NoError(t, b.EnsureFolder(path, false))
	assert.DirExists(t, path)

	// A populated directory is left alone.
	require.NoError(t, os.WriteFile(filepath.Join(path, "data.txt"), []byte("x"), 0o644))
	require.NoError(t, b.EnsureFolder(path, false))
	assert.FileExists(t, filepath.Join(path, "data.txt"))
	assert.Empty(t, b.Ignored())
}

func TestEnsureFolder_RegistersIgnoredFolders(t *testing.T) {
	dir := t.TempDir()
	b := New(NewConfig(dir))
	existing := filepath.Join(dir, "temp")
	require.NoError(t, os.Mkdir(existing, 0o755))

	require.NoError(t, b.EnsureFolder(existing, true))
	require.NoError(t, b.EnsureFolder(filepath.Join(dir, "logs"), true))
	require.NoError(t, b.EnsureFolder(filepath.Join(dir, "config"), false))

	assert.Equal(t, []string{existing, filepath.Join(dir, "logs")}, b.Ignored())
}

func TestEnsureFolder_FileIsInvalidTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	b := New(NewConfig(dir))
	err := b.EnsureFolder(path, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Empty(t, b.Ignored())
}

func TestBuild_OnDisk(t *testing.T) {
	installDir := t.TempDir()
	for kind, content := range fixtureTemplates {
		path := filepath.Join(installDir, AssetsDirName, TemplateFileName(kind))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	root := filepath.Join(t.TempDir(), "nested", "project")

	b := New(NewConfig(installDir, WithRoot(root), WithComponents("gui")))
	_, err := b.Build()
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, ".gitignore"))
	assert.FileExists(t, filepath.Join(root, "gui", "tests", "test_utils.py"))
	data, err := os.ReadFile(filepath.Join(root, "readme.md"))
	require.NoError(t, err)
	assert.Equal(t, "# project\n", string(data))
}
