package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "psalmos-cli",
	Short: "Psalmos CLI tool",
	Long: `Psalmos CLI is a command-line companion for the Psalmos web
application.

Available commands:
  views     List the site's views and their access requirements
  topics    List the event bus topics
  version   Print the version number

Use "psalmos-cli [command] --help" for more information about a command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
