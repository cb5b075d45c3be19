// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"appdex-cli/internal/cache"
)

// newSearchCommand creates the `appdex search` command.
func newSearchCommand(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the application index",
		Long: `Search the application index for a substring match.

With a snapshot cache present the query runs against it; otherwise the
source directories are scanned live and a snapshot is built as a side
effect. The result is printed as a launcher payload in JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				app.Log.SetLevel(log.DebugLevel)
			}
			return runSearch(app, args[0])
		},
	}
}

// runSearch executes a query and writes the launcher payload to stdout.
// A corrupted snapshot is a hard failure with its own exit code; it must
// surface rather than degrade into a silent rescan.
func runSearch(app *App, query string) error {
	results, err := app.Engine.Search(query, app.Config.SearchLimit)
	if err != nil {
		if errors.Is(err, cache.ErrCorrupt) {
			return &ExitError{Code: exitCodeCorruptCache, Err: err}
		}
		return err
	}

	return writeResponse(app.stdout, buildResponse(results))
}

// writeResponse encodes a launcher payload as a single JSON line.
func writeResponse(w io.Writer, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
