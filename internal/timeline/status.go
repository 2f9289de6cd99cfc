package timeline

import "time"

const (
	// upcomingWindow is how far ahead of its start an event counts as
	// imminent. See IsImminent.
	upcomingWindow = 30 * time.Minute

	// openEndedSpan is how long an event with a start but no end or
	// duration is presumed to run before it stops reporting in_progress.
	openEndedSpan = time.Hour
)

// StatusOf derives an event's lifecycle status at the given instant.
// A pinned cancelled status is authoritative and never recomputed away.
func StatusOf(e Event, now time.Time) string {
	if e.Status == StatusCancelled {
		return StatusCancelled
	}
	end, hasEnd := EffectiveEnd(e)
	if hasEnd && !now.Before(end) {
		return StatusCompleted
	}
	if e.StartTime == nil {
		return StatusUpcoming
	}
	start := *e.StartTime
	if !now.Before(start) {
		if hasEnd {
			// now < end, established above.
			return StatusInProgress
		}
		if now.Before(start.Add(openEndedSpan)) {
			return StatusInProgress
		}
		// Started long ago with no end information.
		return StatusScheduled
	}
	return StatusUpcoming
}

// IsImminent reports whether an event starts within the upcoming window.
func IsImminent(e Event, now time.Time) bool {
	if e.StartTime == nil || e.StartTime.Before(now) {
		return false
	}
	return e.StartTime.Sub(now) <= upcomingWindow
}

// RecomputeAll returns a copy of events with every status rederived for
// the given instant. It is pure and idempotent: recomputing an already
// recomputed set at the same instant changes nothing.
func RecomputeAll(events []Event, now time.Time) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		e.Status = StatusOf(e, now)
		out[i] = e
	}
	return out
}

// ProgressOf returns completion progress (0-100) for an in-progress
// event with a known start and effective end. The second return is false
// whenever progress is not meaningful.
func ProgressOf(e Event, now time.Time) (float64, bool) {
	if StatusOf(e, now) != StatusInProgress || e.StartTime == nil {
		return 0, false
	}
	end, ok := EffectiveEnd(e)
	if !ok {
		return 0, false
	}
	total := end.Sub(*e.StartTime)
	if total <= 0 {
		return 0, false
	}
	p := float64(now.Sub(*e.StartTime)) / float64(total) * 100
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p, true
}

// CurrentEvent returns the in-progress event at the given instant, or
// nil. When overlapping legacy data leaves several events in progress,
// the one with the earliest start wins.
func CurrentEvent(events []Event, now time.Time) *Event {
	var cur *Event
	for i := range events {
		if StatusOf(events[i], now) != StatusInProgress {
			continue
		}
		if events[i].StartTime == nil {
			continue
		}
		if cur == nil || events[i].StartTime.Before(*cur.StartTime) {
			cur = &events[i]
		}
	}
	return cur
}

// NextEvent returns the event with the smallest start time strictly
// after now, or nil if nothing further is scheduled.
func NextEvent(events []Event, now time.Time) *Event {
	var next *Event
	for i := range events {
		st := events[i].StartTime
		if st == nil || !st.After(now) {
			continue
		}
		if next == nil || st.Before(*next.StartTime) {
			next = &events[i]
		}
	}
	return next
}

// TimeUntilNext returns how long until the next scheduled event starts.
// The second return is false when nothing further is scheduled.
func TimeUntilNext(events []Event, now time.Time) (time.Duration, bool) {
	next := NextEvent(events, now)
	if next == nil {
		return 0, false
	}
	return next.StartTime.Sub(now), true
}
