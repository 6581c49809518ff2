package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFile is the name of the optional configuration file.
const ConfigFile = "jot.yaml"

// DataDirName is the default data directory inside a project root.
const DataDirName = ".jot"

// ErrRootNotFound is returned by FindRoot when no indicator exists up to the filesystem root.
var ErrRootNotFound = errors.New("root not found")

// FindRoot walks upwards from startDir looking for a jot root indicator:
// a .jot directory or a jot.yaml file. It returns the absolute root path.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if exists(filepath.Join(dir, DataDirName)) || exists(filepath.Join(dir, ConfigFile)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
