// Package cli implements the daybook command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"daybook/internal/version"
)

var (
	configFlag  string
	projectFlag string
)

var rootCmd = &cobra.Command{
	Use:     "daybook",
	Short:   "Event-day timeline manager",
	Long:    `Daybook manages per-project event timelines: timed events with conflict and buffer checking, live statuses, and a finalize-to-lock workflow.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "project ID (defaults to the configured project)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(finalizeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
