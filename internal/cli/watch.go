package cli

import (
	"github.com/spf13/cobra"

	"daybook/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the day's timeline",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return tui.Run(a.engine, a.project, a.loc)
}

// RunDefault launches the watch TUI with default flags. Used when the
// binary is invoked without arguments.
func RunDefault() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return tui.Run(a.engine, a.project, a.loc)
}
