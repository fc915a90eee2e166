// Package cmd wires the CLI surface: `oxrr <url>` plus a version
// subcommand.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omt66/oxrr/launcher"
	"github.com/omt66/oxrr/version"
)

// launchApp is swapped out in tests so command parsing can be exercised
// without spawning real browsers.
var launchApp = func(cmd *cobra.Command, url string) {
	launcher.New().LaunchApp(cmd.Context(), url)
}

// RootCmd is the base command: it takes the single positional URL and
// launches it in an app-mode browser window.
var RootCmd = &cobra.Command{
	Use:   "oxrr <url>",
	Short: "Open a URL in a kiosk-style browser app window",
	Long: `oxrr opens a URL in a chromeless "app mode" browser window, picking the
best installed browser for the host OS and falling back to the system
default browser when none of the known ones are found.

Bare hosts are normalized: "example.com" becomes https://example.com and
"localhost:3000" becomes http://localhost:3000.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("No URL provided")
		}
		if len(args) > 1 {
			return fmt.Errorf("expected a single URL, got %d arguments", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		launchApp(cmd, args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(version.NewCommand(version.New("oxrr")))
}

// Execute runs the root command. Errors (including usage errors) are
// printed by cobra; the caller only decides the exit code.
func Execute() error {
	return RootCmd.Execute()
}
