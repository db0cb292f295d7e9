// Shared helpers for propctl commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/connprops/pkg/props"
)

// openSet loads the resolved properties resource. The caller must defer
// set.Close(). A missing file yields an empty set, so every command works
// against a not-yet-generated resource.
func openSet() (*props.ConnectionProperties, error) {
	set, err := props.NewConnection(resource)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", resource, err)
	}
	return set, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail prints the message to stderr and exits with the given code.
func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
