package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/util"
)

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Remove an event from the timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventDelete,
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	list, err := a.engine.Fetch(ctx, a.project)
	if err != nil {
		return err
	}
	ev, err := resolveEvent(list.Items, args[0])
	if errors.Is(err, errNoMatch) {
		// Removal is idempotent: an unknown ID is already gone.
		fmt.Println("Nothing to delete")
		return nil
	}
	if err != nil {
		return err
	}

	if err := a.engine.DeleteEvent(ctx, a.project, ev.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %q (%s)\n", ev.ItemName, util.ShortID(ev.ID))
	return nil
}
