// Set command for the propctl CLI.
// Implements: prd002-propctl-cli R3.2.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setNoWrite bool

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a property and persist the file",
	Long: `Set a property in the loaded mapping and as a process-wide override,
then rewrite the properties file so other tooling observes the change.
Use --no-write to skip the rewrite.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		set, err := openSet()
		if err != nil {
			fail(exitSysError, "set: %s", err)
		}
		defer set.Close()

		prev, existed := set.Set(key, value)

		if !setNoWrite {
			if err := set.Update(); err != nil {
				fail(exitSysError, "write %s: %s", resource, err)
			}
		}

		if flags.jsonMode {
			out := map[string]any{"key": key, "value": value}
			if existed {
				out["previous"] = prev
			}
			return printJSON(out)
		}
		if existed {
			fmt.Printf("%s=%s (was %s)\n", key, value, prev)
		} else {
			fmt.Printf("%s=%s\n", key, value)
		}
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&setNoWrite, "no-write", false, "do not rewrite the properties file")
}
