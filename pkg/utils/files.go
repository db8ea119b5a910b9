package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", errors.Wrap(err, "resolve path")
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// WriteFileAtomic writes path through a temporary file in the same directory
// and renames it into place once write returns nil. On any failure path is
// left untouched.
func WriteFileAtomic(path string, write func(f *os.File) error) (err error) {
	fullPath, dir, err := GetPathInfo(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*")
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return errors.Wrap(err, "write failed")
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrap(err, "chmod failed")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close failed")
	}
	if err = os.Rename(tmp.Name(), fullPath); err != nil {
		return errors.Wrap(err, "rename failed")
	}
	return nil
}
