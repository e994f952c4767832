package fsops

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ReadFile reads a whole file from fs
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Exists checks if a path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CheckWritable checks if a directory is writable
func CheckWritable(fs afero.Fs, dir string) error {
	f, err := afero.TempFile(fs, dir, ".write_test-*")
	if err != nil {
		return fmt.Errorf("path not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	_ = fs.Remove(name)
	return nil
}

// RemoveQuietly deletes path and reports whether it is gone afterwards.
// A missing file counts as removed; other failures are swallowed.
func RemoveQuietly(fs afero.Fs, path string) bool {
	err := fs.Remove(path)
	return err == nil || os.IsNotExist(err)
}
