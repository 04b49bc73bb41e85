package tempres

import (
	"fmt"

	"github.com/spf13/afero"
)

// Scoped guards a temporary file or directory whose owning scope is known
// statically: the creator defers Close and the resource disappears with the
// scope instead of waiting for process exit. Use a Registry for resources
// whose owning scope cannot be determined up front.
type Scoped struct {
	fs   afero.Fs
	path string
}

// NewScopedFile creates a temporary file under dir (or the filesystem default
// when dir is empty) together with a guard that removes it on Close. The open
// file handle is returned for the caller to write and close.
func NewScopedFile(fs afero.Fs, dir, prefix string) (*Scoped, afero.File, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	file, err := afero.TempFile(fs, dir, prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scoped temporary file: %w", err)
	}

	return &Scoped{fs: fs, path: file.Name()}, file, nil
}

// NewScopedDir creates a temporary directory under dir (or the filesystem
// default when dir is empty) together with a guard that removes the whole
// tree on Close.
func NewScopedDir(fs afero.Fs, dir, prefix string) (*Scoped, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	path, err := afero.TempDir(fs, dir, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoped temporary directory: %w", err)
	}

	return &Scoped{fs: fs, path: path}, nil
}

// Path returns the location of the guarded resource.
func (s *Scoped) Path() string {
	return s.path
}

// Close force-removes the guarded resource. Calling it more than once is safe.
func (s *Scoped) Close() error {
	if s.path == "" {
		return nil
	}

	path := s.path
	s.path = ""

	return ForceRemove(s.fs, path)
}
