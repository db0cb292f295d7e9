// Get command for the propctl CLI.
// Implements: prd002-propctl-cli R3.1.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the resolved value of a property",
	Long:  "Print the value of a property, with process-wide overrides taking precedence over the file-loaded value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		set, err := openSet()
		if err != nil {
			fail(exitSysError, "get: %s", err)
		}
		defer set.Close()

		value, ok := set.Get(key)
		if !ok {
			fail(exitUserError, "property %q is not set", key)
		}

		if flags.jsonMode {
			return printJSON(map[string]string{key: value})
		}
		fmt.Println(value)
		return nil
	},
}
