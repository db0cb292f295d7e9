// Package paths resolves the properties resource and configuration
// directory locations for the propctl CLI.
// Implements: prd002-propctl-cli R2 (resolution precedence).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultResourceName is the CWD-relative properties file used when no
// override is active. The build writes this file; tests read it back.
const DefaultResourceName = "config/db-connection.properties"

// Environment variable names for overrides.
const (
	EnvResource  = "PROPCTL_RESOURCE"
	EnvConfigDir = "PROPCTL_CONFIG_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// ResolveResource returns the properties resource path following the
// precedence chain: flag > PROPCTL_RESOURCE env > CWD-relative default.
func ResolveResource(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvResource); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultResourceName), nil
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/propctl (fallback ~/.config/propctl)
// macOS:   ~/Library/Application Support/propctl
// Windows: %APPDATA%/propctl
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "propctl"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "propctl"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "propctl"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PROPCTL_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}
