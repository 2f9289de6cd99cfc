package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/timeline"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty timeline for the project",
	Long:  "Creates a new timeline in setup mode with no events. Fails if the project already has one.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	_, err = a.engine.Initialize(cmd.Context(), a.project)
	if err != nil {
		if errors.Is(err, timeline.ErrTimelineExists) {
			return fmt.Errorf("project %q already has a timeline", a.project)
		}
		return err
	}

	fmt.Printf("Initialized timeline for project %q in %s\n", a.project, a.cfg.DataDir)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Add events: daybook event add --name \"Ceremony\" --start 15:00 --duration 45")
	fmt.Println("  2. Watch the day unfold: daybook watch")
	return nil
}
