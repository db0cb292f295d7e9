// Package main provides the propctl CLI for managing database connection
// properties files.
// Implements: prd002-propctl-cli R1 (root command, global flags, exit codes).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/connprops/internal/log"
	"github.com/mesh-intelligence/connprops/internal/paths"
)

// Exit codes (prd002-propctl-cli R1.3).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	resource  string
	configDir string
	jsonMode  bool
	logLevel  string
}

var flags rootFlags

// resource is the resolved properties file path, set before any subcommand runs.
var resource string

var rootCmd = &cobra.Command{
	Use:   "propctl",
	Short: "Manage database connection properties files",
	Long: `Propctl reads and rewrites the flat key=value properties file that
build tooling uses to describe the database instance under test. Values set
through propctl become process-wide overrides and are persisted back to the
file for other tooling to pick up.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.resource, "resource", "", "properties file (default: config/db-connection.properties)")
	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(connCmd)
	rootCmd.AddCommand(watchCmd)
}

// setup loads tool configuration and resolves the resource path for the
// invoked subcommand.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := flags.logLevel
	if level == "" {
		level = cfg.GetString(cfgKeyLogLevel)
	}
	log.Configure(log.Config{Level: level})

	resource, err = resolveResource(cfg.GetString(cfgKeyResource))
	if err != nil {
		return fmt.Errorf("resolve resource: %w", err)
	}
	return nil
}

// resolveResource applies the precedence chain flag > PROPCTL_RESOURCE env >
// config.yaml value > CWD-relative default.
func resolveResource(fromConfig string) (string, error) {
	if flags.resource != "" {
		return filepath.Abs(flags.resource)
	}
	if os.Getenv(paths.EnvResource) != "" {
		return paths.ResolveResource("")
	}
	if fromConfig != "" {
		return filepath.Abs(fromConfig)
	}
	return paths.ResolveResource("")
}
