package tempres

import (
	"fmt"

	"github.com/spf13/afero"
)

// DefaultPrefix is used when callers do not supply their own prefix for
// created temporary resources.
const DefaultPrefix = "tmpkeep-"

// CreateTempFile produces a uniquely named file under dir (or the registry
// temp root when dir is empty) and registers it for deletion at process exit.
// When suffix is non-empty the file is renamed to carry it and both the
// pre-suffix and post-suffix paths end up registered; the returned path is
// the final one and exists on return. Creation errors surface to the caller.
func (r *Registry) CreateTempFile(prefix, dir, suffix string) (string, error) {
	if prefix == "" {
		prefix = r.prefix
	}
	if dir == "" {
		dir = r.root
	}

	file, err := afero.TempFile(r.fs, dir, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	path := file.Name()
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file [%s]: %w", path, err)
	}

	r.Register(path)

	if suffix == "" {
		return path, nil
	}

	suffixed := path + suffix
	if err := r.fs.Rename(path, suffixed); err != nil {
		return "", fmt.Errorf("failed to apply suffix %q to [%s]: %w", suffix, path, err)
	}
	r.Register(suffixed)

	return suffixed, nil
}

// CreateTempDir produces a uniquely named directory under the registry temp
// root and registers it for deletion at process exit.
func (r *Registry) CreateTempDir() (string, error) {
	dir, err := afero.TempDir(r.fs, r.root, r.prefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	r.Register(dir)

	return dir, nil
}
