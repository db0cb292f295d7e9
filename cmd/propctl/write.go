// Write command for the propctl CLI.
// Implements: prd002-propctl-cli R3.4.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Rewrite the properties file from its current content",
	Long: `Re-serialize the properties file in canonical escaped form (no
comment header, one key=value line per pair) and broadcast a reload to any
live readers in this process.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := openSet()
		if err != nil {
			fail(exitSysError, "write: %s", err)
		}
		defer set.Close()

		if err := set.Update(); err != nil {
			fail(exitSysError, "write %s: %s", resource, err)
		}

		fmt.Printf("wrote %d properties to %s\n", len(set.Pairs()), resource)
		return nil
	},
}
