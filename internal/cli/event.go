package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/timeline"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Add, update, or delete timeline events",
}

// eventFlags holds the shared flag set for add and update.
type eventFlags struct {
	name     string
	typ      string
	start    string
	end      string
	duration int
	desc     string
	notes    string
	location string
	status   string
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "event name (required for add)")
	cmd.Flags().StringVar(&f.typ, "type", timeline.TypeOther, "event type")
	cmd.Flags().StringVar(&f.start, "start", "", "start time (RFC 3339, \"YYYY-MM-DD HH:MM\", or \"HH:MM\")")
	cmd.Flags().StringVar(&f.end, "end", "", "end time (same formats as --start)")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "duration in minutes (ignored when --end is set)")
	cmd.Flags().StringVar(&f.desc, "desc", "", "description")
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes")
	cmd.Flags().StringVar(&f.location, "location", "", "location reference")
	cmd.Flags().StringVar(&f.status, "status", "", "pinned status (cancelled survives recompute)")
}

// toEvent converts the flag values into an event, parsing times in the
// configured zone.
func (f *eventFlags) toEvent(a *app, now time.Time) (timeline.Event, error) {
	ev := timeline.Event{
		Type:        f.typ,
		ItemName:    f.name,
		Description: f.desc,
		Notes:       f.notes,
		DurationMin: f.duration,
		LocationID:  f.location,
		Status:      f.status,
	}
	if f.start != "" {
		t, err := ParseEventTime(f.start, now, a.loc)
		if err != nil {
			return timeline.Event{}, fmt.Errorf("--start: %w", err)
		}
		ev.StartTime = &t
	}
	if f.end != "" {
		t, err := ParseEventTime(f.end, now, a.loc)
		if err != nil {
			return timeline.Event{}, fmt.Errorf("--end: %w", err)
		}
		ev.EndTime = &t
	}
	return ev, nil
}

func init() {
	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventUpdateCmd)
	eventCmd.AddCommand(eventDeleteCmd)
}
