package timeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine operations.
var (
	// ErrFinalized is returned by every mutating operation once a
	// timeline's finalized flag is set.
	ErrFinalized = errors.New("timeline is finalized")

	// ErrTimelineExists is returned by Initialize when the project
	// already has a timeline.
	ErrTimelineExists = errors.New("timeline already exists")

	// ErrTimelineNotFound is returned by stores when no timeline is
	// persisted for the project.
	ErrTimelineNotFound = errors.New("timeline not found")

	// ErrEventNotFound is returned by UpdateEvent for an unknown event ID.
	ErrEventNotFound = errors.New("event not found")
)

// TimingCode identifies the kind of scheduling violation.
type TimingCode string

const (
	TimingInvalidOrdering    TimingCode = "invalid_ordering"
	TimingConflict           TimingCode = "conflict"
	TimingInsufficientBuffer TimingCode = "insufficient_buffer"
)

// TimingError describes a scheduling violation. OtherID names the
// already-scheduled event the candidate collided with; GapMinutes is the
// measured gap for insufficient-buffer failures.
type TimingError struct {
	Code       TimingCode
	OtherID    string
	GapMinutes int
}

func (e *TimingError) Error() string {
	switch e.Code {
	case TimingInvalidOrdering:
		return "end time must not be before start time"
	case TimingConflict:
		return fmt.Sprintf("overlaps event %s", e.OtherID)
	case TimingInsufficientBuffer:
		return fmt.Sprintf("only %d minutes before/after event %s (minimum %d)",
			e.GapMinutes, e.OtherID, MinBufferMinutes)
	default:
		return string(e.Code)
	}
}

// IsTimingCode reports whether err (or any wrapped error) is a
// TimingError with the given code.
func IsTimingCode(err error, code TimingCode) bool {
	var te *TimingError
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports malformed input with a per-field breakdown.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid event: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
