package tempres

import (
	"os"

	"github.com/spf13/afero"
)

// ForceRemove deletes path whether it is a file or a directory tree, clearing
// read-only permission bits first so write-protected entries still go away.
// The permission pass is best-effort: chmod failures do not stop the removal
// attempt. A path that does not exist is not an error.
func ForceRemove(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		_ = fs.Chmod(path, 0o600)
		return fs.Remove(path)
	}

	_ = afero.Walk(fs, path, func(entry string, entryInfo os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if entryInfo.IsDir() {
			_ = fs.Chmod(entry, 0o700)
		} else {
			_ = fs.Chmod(entry, 0o600)
		}
		return nil
	})

	return fs.RemoveAll(path)
}
