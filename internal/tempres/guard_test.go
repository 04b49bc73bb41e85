package tempres

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedFileRemovedOnClose(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0o755))

	guard, file, err := NewScopedFile(fs, "/tmp", "spool_")
	require.NoError(t, err)

	_, err = file.WriteString("buffered content")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	path := guard.Path()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, guard.Close())

	exists, err = afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScopedCloseIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0o755))

	guard, file, err := NewScopedFile(fs, "/tmp", "")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	require.NoError(t, guard.Close())
	assert.NoError(t, guard.Close())
}

func TestScopedDirRemovesTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0o755))

	guard, err := NewScopedDir(fs, "/tmp", "work_")
	require.NoError(t, err)

	path := guard.Path()
	nested := path + "/nested"
	require.NoError(t, fs.MkdirAll(nested, 0o755))
	require.NoError(t, afero.WriteFile(fs, nested+"/data.txt", []byte("data"), 0o644))

	require.NoError(t, guard.Close())

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists)
}
