package file

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

var AppFs = afero.NewOsFs()

func IsPathExist(path string) (bool, error) {
	return afero.Exists(AppFs, path)
}

func IsFile(path string) (bool, error) {
	exists, err := IsPathExist(path)
	if err != nil || !exists {
		return false, err
	}
	isDir, err := afero.IsDir(AppFs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	return !isDir, nil
}

// TempDir creates a new temporary directory on AppFs.
func TempDir(prefix string) (string, error) {
	dir, err := afero.TempDir(AppFs, "", prefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	slog.Debug("Created temporary directory " + dir)
	return dir, nil
}

func RemoveAll(path string) error {
	slog.Debug("Removing " + path)
	if err := AppFs.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
