// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newUpdateCommand creates the `appdex update` command, the explicit rebuild
// trigger. The snapshot never expires on its own; this is the only refresh.
func newUpdateCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Aliases: []string{"update-cache"},
		Short:   "Rebuild the snapshot cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				app.Log.SetLevel(log.DebugLevel)
			}
			return runUpdate(app)
		},
	}
}

// runUpdate rebuilds the snapshot from a full scan of the source directories.
func runUpdate(app *App) error {
	fmt.Fprintln(app.stdout, "Updating cache...")
	if err := app.Engine.Rebuild(); err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, "Cache updated:", app.Config.CachePath)
	return nil
}
