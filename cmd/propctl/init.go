// Init command for the propctl CLI.
// Implements: prd002-propctl-cli R3.6.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/connprops/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory and an empty properties file",
	Long: `Create the propctl configuration directory with a default
config.yaml, and the properties file (empty) if it does not exist yet.
Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flags.configDir)
		if err != nil {
			fail(exitSysError, "resolve config dir: %s", err)
		}

		if err := ensureConfigDir(configDir); err != nil {
			fail(exitSysError, "create config directory: %s", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fail(exitSysError, "write config: %s", err)
		}

		if err := ensureResourceFile(resource); err != nil {
			fail(exitSysError, "create properties file: %s", err)
		}

		fmt.Printf("initialized %s (config in %s)\n", resource, configDir)
		return nil
	},
}

// ensureResourceFile creates an empty properties file (and its directory) if
// none exists. Idempotent.
func ensureResourceFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, nil, 0o644)
}
