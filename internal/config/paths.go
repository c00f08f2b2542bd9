package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for yaml-whisperer.
type Paths struct {
	// ConfigFile is the path to the config file (~/.yaml-whisperer/config.yaml).
	ConfigFile string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Paths{
		ConfigFile: filepath.Join(homeDir, ".yaml-whisperer", "config.yaml"),
	}, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
