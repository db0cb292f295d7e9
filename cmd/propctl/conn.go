// Conn command for the propctl CLI.
// Implements: prd002-propctl-cli R3.5 (derived connection settings).
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/connprops/pkg/props"
)

// connInfo is the JSON shape of the derived connection settings. Ports stay
// strings so an unset or malformed value renders as-is instead of a fake 0.
type connInfo struct {
	Host           string     `json:"host"`
	NativePort     string     `json:"native_port"`
	RPCPort        string     `json:"rpc_port"`
	SSLStoragePort string     `json:"ssl_storage_port"`
	StoragePort    string     `json:"storage_port"`
	Mode           props.Mode `json:"mode"`
}

var connCmd = &cobra.Command{
	Use:   "conn",
	Short: "Print the derived database connection settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := openSet()
		if err != nil {
			fail(exitSysError, "conn: %s", err)
		}
		defer set.Close()

		info := connInfo{
			Host:           set.Host(),
			NativePort:     portString(set.NativePort),
			RPCPort:        portString(set.RPCPort),
			SSLStoragePort: portString(set.SSLStoragePort),
			StoragePort:    portString(set.StoragePort),
			Mode:           set.Mode(),
		}

		if flags.jsonMode {
			return printJSON(info)
		}
		fmt.Printf("host:             %s\n", info.Host)
		fmt.Printf("native port:      %s\n", info.NativePort)
		fmt.Printf("rpc port:         %s\n", info.RPCPort)
		fmt.Printf("ssl storage port: %s\n", info.SSLStoragePort)
		fmt.Printf("storage port:     %s\n", info.StoragePort)
		fmt.Printf("mode:             %s\n", info.Mode)
		return nil
	},
}

// portString renders a typed port accessor result, or "(unset)" when the
// value is missing or unparsable.
func portString(get func() (int, error)) string {
	port, err := get()
	if err != nil {
		return "(unset)"
	}
	return strconv.Itoa(port)
}
