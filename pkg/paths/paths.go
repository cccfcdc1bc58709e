// Package paths provides centralized path handling for dotstrap.
// It implements XDG Base Directory compliance and derives the
// run-scoped backup root from an injected clock.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/dotstrap/dotstrap/pkg/errors"
	"github.com/dotstrap/dotstrap/pkg/types"
)

// Environment variable names
const (
	// EnvConfigFile overrides the configuration file location
	EnvConfigFile = "DOTSTRAP_CONFIG"

	// EnvDataDir overrides the XDG data directory for dotstrap
	EnvDataDir = "DOTSTRAP_DATA_DIR"
)

const (
	// AppDirName is the directory name for dotstrap-specific files
	AppDirName = "dotstrap"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// BackupsDirName is the subdirectory collecting run-scoped backup roots
	BackupsDirName = "backups"

	// BackupStampLayout names one backup root per invocation time
	BackupStampLayout = "2006-01-02T15-04-05"
)

// ConfigFilePath returns the configuration file location, honoring
// the DOTSTRAP_CONFIG override.
func ConfigFilePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// DataDir returns the dotstrap data directory, honoring DOTSTRAP_DATA_DIR
func DataDir() string {
	if p := os.Getenv(EnvDataDir); p != "" {
		return p
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultConfigRoot is where consuming applications discover their
// configuration; the target root for linking.
func DefaultConfigRoot() string {
	return xdg.ConfigHome
}

// DefaultCloneDir is the default destination for the dotfiles clone
func DefaultCloneDir() string {
	return filepath.Join(xdg.Home, "dotfiles")
}

// BackupRoot derives the run-scoped backup directory from the clock.
// Each invocation gets a fresh root; roots are never reused.
func BackupRoot(clock types.Clock) string {
	return filepath.Join(DataDir(), BackupsDirName, clock.Now().Format(BackupStampLayout))
}

// ExpandHome resolves a leading ~/ against the user's home directory
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve home directory")
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
