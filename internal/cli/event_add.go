package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/util"
)

var addFlags eventFlags

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an event to the timeline",
	Args:  cobra.NoArgs,
	RunE:  runEventAdd,
}

func init() {
	addFlags.register(eventAddCmd)
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ev, err := addFlags.toEvent(a, a.engine.Clock())
	if err != nil {
		return err
	}

	id, err := a.engine.AddEvent(cmd.Context(), a.project, ev)
	if err != nil {
		return err
	}
	fmt.Printf("Added %q (%s)\n", ev.ItemName, util.ShortID(id))
	return nil
}
