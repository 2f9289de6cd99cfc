package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/timeline"
)

var modeCmd = &cobra.Command{
	Use:       "mode <setup|active|review>",
	Short:     "Set the timeline mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{timeline.ModeSetup, timeline.ModeActive, timeline.ModeReview},
	RunE:      runMode,
}

func runMode(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	mode := args[0]
	if err := a.engine.Reconfigure(cmd.Context(), a.project, timeline.ConfigPatch{Mode: &mode}); err != nil {
		return err
	}
	fmt.Printf("Project %q is now in %s mode\n", a.project, mode)
	return nil
}
