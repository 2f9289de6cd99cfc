package timeline

import "fmt"

// Field length bounds for free-text event fields.
const (
	MaxNameLen        = 200
	MaxDescriptionLen = 1000
	MaxNotesLen       = 2000
)

// ValidateEvent checks an event's shape: required name, bounded text
// fields, known type and status, non-negative duration. All field
// failures are collected into one ValidationError.
func ValidateEvent(e Event) error {
	var fields []FieldError

	if e.ItemName == "" {
		fields = append(fields, FieldError{"itemName", "required"})
	} else if len(e.ItemName) > MaxNameLen {
		fields = append(fields, FieldError{"itemName", fmt.Sprintf("longer than %d characters", MaxNameLen)})
	}
	if len(e.Description) > MaxDescriptionLen {
		fields = append(fields, FieldError{"description", fmt.Sprintf("longer than %d characters", MaxDescriptionLen)})
	}
	if len(e.Notes) > MaxNotesLen {
		fields = append(fields, FieldError{"notes", fmt.Sprintf("longer than %d characters", MaxNotesLen)})
	}
	if !ValidEventType(e.Type) {
		fields = append(fields, FieldError{"type", fmt.Sprintf("unknown event type %q", e.Type)})
	}
	if e.Status != "" && !ValidStatus(e.Status) {
		fields = append(fields, FieldError{"status", fmt.Sprintf("unknown status %q", e.Status)})
	}
	if e.DurationMin < 0 {
		fields = append(fields, FieldError{"duration", "must not be negative"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidMode reports whether m is a known timeline mode.
func ValidMode(m string) bool {
	switch m {
	case ModeSetup, ModeActive, ModeReview:
		return true
	}
	return false
}
