package timeline

import "time"

// EffectiveEnd returns the instant an event finishes: the explicit end
// time if set, otherwise startTime+duration. The second return is false
// for point-in-time markers, which have no effective end.
func EffectiveEnd(e Event) (time.Time, bool) {
	if e.EndTime != nil {
		return *e.EndTime, true
	}
	if e.StartTime != nil && e.DurationMin > 0 {
		return e.StartTime.Add(time.Duration(e.DurationMin) * time.Minute), true
	}
	return time.Time{}, false
}

// Overlaps reports whether two events occupy overlapping intervals.
// A point event behaves as a zero-width interval: it can fall inside
// another event's interval, but two point events only overlap when they
// share the same instant. Events without a start time never overlap.
func Overlaps(a, b Event) bool {
	if a.StartTime == nil || b.StartTime == nil {
		return false
	}
	aEnd, aHasEnd := EffectiveEnd(a)
	bEnd, bHasEnd := EffectiveEnd(b)
	if !aHasEnd && !bHasEnd {
		return a.StartTime.Equal(*b.StartTime)
	}
	if !aHasEnd {
		aEnd = *a.StartTime
	}
	if !bHasEnd {
		bEnd = *b.StartTime
	}
	return a.StartTime.Before(bEnd) && b.StartTime.Before(aEnd)
}

// GapMinutes returns the whole minutes between the earlier event's
// effective end and the later event's start. Both events must have a
// start time; the result is only meaningful when they do not overlap.
func GapMinutes(a, b Event) int {
	first, second := a, b
	if b.StartTime.Before(*a.StartTime) {
		first, second = b, a
	}
	end, ok := EffectiveEnd(first)
	if !ok {
		end = *first.StartTime
	}
	gap := second.StartTime.Sub(end)
	if gap < 0 {
		return 0
	}
	return int(gap / time.Minute)
}
