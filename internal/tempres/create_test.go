package tempres

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, root string) (*Registry, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))

	return NewRegistry(fs, nil, WithTempRoot(root)), fs
}

func TestCreateTempFileWithSuffix(t *testing.T) {
	registry, fs := newTestRegistry(t, "/tmp")

	path, err := registry.CreateTempFile("drush_", "", ".sql")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, ".sql"), "expected [%s] to end in .sql", path)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "drush_"))

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists, "the suffixed file must exist immediately after creation")

	base := strings.TrimSuffix(path, ".sql")
	assert.Equal(t, []string{base, path}, registry.Registered(),
		"both the pre-suffix and post-suffix paths must be registered")
}

func TestCreateTempFileWithoutSuffix(t *testing.T) {
	registry, fs := newTestRegistry(t, "/tmp")

	path, err := registry.CreateTempFile("", "", "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(path), DefaultPrefix))

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Equal(t, []string{path}, registry.Registered())
}

func TestCreateTempFileExplicitDirectory(t *testing.T) {
	registry, fs := newTestRegistry(t, "/tmp")
	require.NoError(t, fs.MkdirAll("/staging", 0o755))

	path, err := registry.CreateTempFile("dump_", "/staging", "")
	require.NoError(t, err)

	assert.Equal(t, "/staging", filepath.Dir(path))
}

func TestCreateTempFileCreationError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	registry := NewRegistry(fs, nil, WithTempRoot("/tmp"))

	_, err := registry.CreateTempFile("", "", ".sql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temporary file")
	assert.Empty(t, registry.Registered(), "nothing must be registered when creation fails")
}

func TestCreateTempDir(t *testing.T) {
	registry, fs := newTestRegistry(t, "/tmp")

	dir, err := registry.CreateTempDir()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dir, "/tmp"), "expected [%s] to live under the temp root", dir)

	isDir, err := afero.IsDir(fs, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isEmpty, err := afero.IsEmpty(fs, dir)
	require.NoError(t, err)
	assert.True(t, isEmpty)

	assert.Equal(t, []string{dir}, registry.Registered())
}

func TestCreateTempDirCreationError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	registry := NewRegistry(fs, nil, WithTempRoot("/tmp"))

	_, err := registry.CreateTempDir()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temporary directory")
}

func TestCreateTempDirHonoursPrefixOption(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0o755))

	registry := NewRegistry(fs, nil, WithTempRoot("/tmp"), WithPrefix("drush_"))

	dir, err := registry.CreateTempDir()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(dir), "drush_"))
}
