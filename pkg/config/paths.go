package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
)

// AppDir is the name of the launcher's directory under XDG config paths.
const AppDir = "radial"

// ConfigFileName is the default config file name.
const ConfigFileName = "config.yaml"

// ConfigDir returns the launcher's config directory, ~/.config/radial by
// convention.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDir)
}

// UsageDir returns the directory holding the usage counter store.
func UsageDir() string {
	return filepath.Join(ConfigDir(), "usage")
}

// IsConfigPathAllowed reports whether a config file may be loaded from the
// given path. Allowed roots are the launcher's config directory and the
// current working directory; anything else is rejected before parsing.
func IsConfigPathAllowed(path string) bool {
	normalized, err := normalizePath(path)
	if err != nil {
		return false
	}

	if isUnder(normalized, ConfigDir()) {
		return true
	}

	cwd, err := os.Getwd()
	if err == nil && isUnder(normalized, cwd) {
		return true
	}

	slog.Error("config file path not allowed",
		"path", path, "allowed", []string{ConfigDir(), "."})
	return false
}

// Find returns the first config file present in the search order:
// ~/.config/radial/config.yaml, then ./config.yaml.
func Find() (string, bool) {
	primary := filepath.Join(ConfigDir(), ConfigFileName)
	if fileExists(primary) {
		return primary, true
	}
	if fileExists(ConfigFileName) {
		return ConfigFileName, true
	}
	return "", false
}

// ExpandHome resolves a leading ~ in a path, returning the input unchanged
// when expansion fails.
func ExpandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

func normalizePath(path string) (string, error) {
	expanded := ExpandHome(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

func isUnder(path, dir string) bool {
	cleanDir, err := normalizePath(dir)
	if err != nil {
		return false
	}
	if path == cleanDir {
		return true
	}
	return strings.HasPrefix(path, cleanDir+string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
