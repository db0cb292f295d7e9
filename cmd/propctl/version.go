// Version command for the propctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/connprops/pkg/props"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the propctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("propctl", props.Version)
	},
}
