// Watch command for the propctl CLI.
// Implements: prd003-watcher (CLI surface).
package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/connprops/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the properties file and reload live readers on change",
	Long: `Watch the properties file until interrupted. Whenever external
tooling rewrites it, every live PropertySet in this process reloads and a
log line records the broadcast.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Keep a set open so the broadcast has a visible effect to log.
		set, err := openSet()
		if err != nil {
			fail(exitSysError, "watch: %s", err)
		}
		defer set.Close()

		w, err := watch.New(resource)
		if err != nil {
			fail(exitSysError, "watch: %s", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fail(exitSysError, "watch: %s", err)
		}
		return nil
	},
}
