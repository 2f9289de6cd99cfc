package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"daybook/internal/timeline"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <events.yaml>",
	Short: "Replace the whole event set from a YAML file",
	Long: `Replaces every event on the timeline with the set in the given YAML file.
The batch is validated as a whole; one bad event rejects the entire file.

File format:

  - name: Ceremony
    type: ceremony
    start: "2025-06-14 15:00"
    duration: 45
  - name: Cocktail hour
    type: cocktail_hour
    start: "2025-06-14 16:00"
    end: "2025-06-14 17:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runReplace,
}

// yamlEvent is the on-disk event shape for bulk replacement.
type yamlEvent struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	DurationMin int    `yaml:"duration"`
	Description string `yaml:"description"`
	Notes       string `yaml:"notes"`
	LocationID  string `yaml:"location"`
	Status      string `yaml:"status"`
}

func runReplace(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read events file: %w", err)
	}
	var raw []yamlEvent
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse events file: %w", err)
	}

	now := a.engine.Clock()
	events := make([]timeline.Event, len(raw))
	for i, ye := range raw {
		ev := timeline.Event{
			ID:          ye.ID,
			Type:        ye.Type,
			ItemName:    ye.Name,
			Description: ye.Description,
			Notes:       ye.Notes,
			DurationMin: ye.DurationMin,
			LocationID:  ye.LocationID,
			Status:      ye.Status,
		}
		if ev.Type == "" {
			ev.Type = timeline.TypeOther
		}
		if ye.Start != "" {
			t, err := ParseEventTime(ye.Start, now, a.loc)
			if err != nil {
				return fmt.Errorf("event %d (%s): start: %w", i+1, ye.Name, err)
			}
			ev.StartTime = &t
		}
		if ye.End != "" {
			t, err := ParseEventTime(ye.End, now, a.loc)
			if err != nil {
				return fmt.Errorf("event %d (%s): end: %w", i+1, ye.Name, err)
			}
			ev.EndTime = &t
		}
		events[i] = ev
	}

	if err := a.engine.ReplaceAllEvents(cmd.Context(), a.project, events); err != nil {
		return err
	}
	fmt.Printf("Replaced timeline with %d events\n", len(events))
	return nil
}
