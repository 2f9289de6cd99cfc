package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daybook/internal/timeline"
	"daybook/internal/util"
)

var updateFlags eventFlags

var eventUpdateCmd = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Update an existing event",
	Long:  "Updates the event matching the given ID (a unique prefix is enough). Only the flags you pass change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventUpdate,
}

func init() {
	updateFlags.register(eventUpdateCmd)
}

func runEventUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	list, err := a.engine.Fetch(ctx, a.project)
	if err != nil {
		return err
	}
	current, err := resolveEvent(list.Items, args[0])
	if err != nil {
		return err
	}

	patch, err := updateFlags.toEvent(a, a.engine.Clock())
	if err != nil {
		return err
	}

	ev := *current
	flags := cmd.Flags()
	if flags.Changed("name") {
		ev.ItemName = patch.ItemName
	}
	if flags.Changed("type") {
		ev.Type = patch.Type
	}
	if flags.Changed("start") {
		ev.StartTime = patch.StartTime
	}
	if flags.Changed("end") {
		ev.EndTime = patch.EndTime
	}
	if flags.Changed("duration") {
		ev.DurationMin = patch.DurationMin
	}
	if flags.Changed("desc") {
		ev.Description = patch.Description
	}
	if flags.Changed("notes") {
		ev.Notes = patch.Notes
	}
	if flags.Changed("location") {
		ev.LocationID = patch.LocationID
	}
	if flags.Changed("status") {
		ev.Status = patch.Status
	}

	if err := a.engine.UpdateEvent(ctx, a.project, ev); err != nil {
		return err
	}
	fmt.Printf("Updated %q (%s)\n", ev.ItemName, util.ShortID(ev.ID))
	return nil
}

// errNoMatch marks an event reference that resolves to nothing.
var errNoMatch = errors.New("no matching event")

// resolveEvent finds the event whose ID matches ref exactly or by
// unique prefix.
func resolveEvent(items []timeline.Event, ref string) (*timeline.Event, error) {
	var matches []*timeline.Event
	for i := range items {
		if items[i].ID == ref {
			return &items[i], nil
		}
		if strings.HasPrefix(items[i].ID, ref) {
			matches = append(matches, &items[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%q: %w", ref, errNoMatch)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous: %d events match", ref, len(matches))
	}
}
