package timeline

// MinBufferMinutes is the minimum gap required between two scheduled
// events on the same timeline.
const MinBufferMinutes = 5

// EnsureOrdering fails when an event carries both a start and an end
// time and the end precedes the start. Duration-only events always pass:
// durations are non-negative by validation.
func EnsureOrdering(e Event) error {
	if e.StartTime != nil && e.EndTime != nil && e.EndTime.Before(*e.StartTime) {
		return &TimingError{Code: TimingInvalidOrdering}
	}
	return nil
}

// ValidateAgainstExisting checks the candidate against every other
// scheduled event on the timeline. Events sharing the candidate's ID are
// skipped so updates never conflict with their own prior interval, and
// events without a start time are excluded from all timing checks.
//
// The first violation found is returned; violations are not aggregated.
// Every pair is checked, not just time-adjacent neighbors, because the
// stored set is not kept in start order.
func ValidateAgainstExisting(candidate Event, existing []Event) error {
	if candidate.StartTime == nil {
		return nil
	}
	for i := range existing {
		other := existing[i]
		if other.ID == candidate.ID || other.StartTime == nil {
			continue
		}
		if Overlaps(candidate, other) {
			return &TimingError{Code: TimingConflict, OtherID: other.ID}
		}
		if gap := GapMinutes(candidate, other); gap < MinBufferMinutes {
			return &TimingError{
				Code:       TimingInsufficientBuffer,
				OtherID:    other.ID,
				GapMinutes: gap,
			}
		}
	}
	return nil
}

// ValidateSet runs ordering and pairwise timing checks over a whole
// incoming event set, as used by bulk replacement. The first violation
// rejects the batch.
func ValidateSet(events []Event) error {
	for i := range events {
		if err := EnsureOrdering(events[i]); err != nil {
			return err
		}
	}
	for i := range events {
		if err := ValidateAgainstExisting(events[i], events); err != nil {
			return err
		}
	}
	return nil
}
