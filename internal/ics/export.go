// Package ics renders a timeline as an iCalendar document so schedules
// can be shared with vendors and calendar apps.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"daybook/internal/log"
	"daybook/internal/timeline"
)

// locationProp carries the opaque location reference; it is not a venue
// name, so it goes in an X- property rather than LOCATION.
const locationProp = "X-DAYBOOK-LOCATION-ID"

// Build converts a timeline aggregate into a calendar. Unscheduled
// events (no start time) are skipped: they have no place on a calendar
// yet. Point events are emitted with DTSTART only.
func Build(list *timeline.List) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//daybook//timeline//EN")

	now := time.Now()
	exported := 0
	for _, item := range list.Items {
		if item.StartTime == nil {
			continue
		}
		ev := cal.AddEvent(item.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(*item.StartTime)
		if end, ok := timeline.EffectiveEnd(item); ok {
			ev.SetEndAt(end)
		}
		ev.SetSummary(item.ItemName)
		if item.Description != "" {
			ev.SetDescription(item.Description)
		}
		if item.Status == timeline.StatusCancelled {
			ev.SetStatus(ical.ObjectStatusCancelled)
		} else {
			ev.SetStatus(ical.ObjectStatusConfirmed)
		}
		if item.LocationID != "" {
			ev.SetProperty(ical.ComponentProperty(locationProp), item.LocationID)
		}
		exported++
	}

	log.Debug("built calendar", "project", list.Config.ID, "events", exported)
	return cal
}

// Export writes the serialized calendar for the given timeline.
func Export(w io.Writer, list *timeline.List) error {
	cal := Build(list)
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}
