// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"appdex-cli/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// appFactory builds the App a command handler runs against. Handlers call it
// only after flag parsing, so --config and --verbose are in effect by then.
// Tests substitute factories returning fake-backed Apps.
type appFactory func() (*App, error)

// newRootCommand builds the appdex command tree. The root itself accepts a
// bare query so `appdex firefox` works without the search subcommand.
func newRootCommand(newApp appFactory) *cobra.Command {
	var verbose bool
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "appdex [query]",
		Short: "Search installed desktop applications",
		Long: TitleStyle.Render("appdex") + SubtitleStyle.Render(" - a local desktop application index") + `

appdex scans the well-known application directories for .desktop
descriptors, keeps a snapshot cache of everything it finds, and answers
substring queries against it ranked by which field matched.

` + SubtitleStyle.Render("Examples:") + `
  appdex firefox            Search for firefox
  appdex search terminal    Same, spelled out
  appdex update             Rebuild the snapshot cache`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgFile != "" {
				config.SetConfigFilePathOverride(cfgFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			app, err := newApp()
			if err != nil {
				return err
			}
			if verbose {
				app.Log.SetLevel(log.DebugLevel)
			}
			return runSearch(app, args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/appdex/config.toml)")

	rootCmd.AddCommand(newSearchCommand(newApp))
	rootCmd.AddCommand(newUpdateCommand(newApp))
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the command tree against production dependencies. This is
// called by main.main().
func Execute() {
	newApp := func() (*App, error) {
		return NewApp(Dependencies{})
	}

	if err := fang.Execute(
		context.Background(),
		newRootCommand(newApp),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
