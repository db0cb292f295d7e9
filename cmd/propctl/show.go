// Show command for the propctl CLI.
// Implements: prd002-propctl-cli R3.3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List all file-loaded properties in order",
	Long:  "List every key/value pair in the properties file, in the order Update would write them. Overrides are not included.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := openSet()
		if err != nil {
			fail(exitSysError, "show: %s", err)
		}
		defer set.Close()

		pairs := set.Pairs()

		if flags.jsonMode {
			return printJSON(pairs)
		}
		for _, p := range pairs {
			fmt.Printf("%s=%s\n", p.Key, p.Value)
		}
		return nil
	},
}
