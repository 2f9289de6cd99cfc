// Package timeline implements the event-day timeline engine: the data
// model, scheduling validation, derived status computation, and the
// orchestrating operations that tie them to a persistence store.
package timeline

import "time"

// Timeline mode constants. Mode is informational and never gates writes.
const (
	ModeSetup  = "setup"
	ModeActive = "active"
	ModeReview = "review"
)

// Event status constants. Status is derived on every read; only
// StatusCancelled is an authoritative override that survives recompute.
const (
	StatusUpcoming   = "upcoming"
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusDelayed    = "delayed"
)

// Event type constants.
const (
	TypePreparation  = "preparation"
	TypeVendorSetup  = "vendor_setup"
	TypeCeremony     = "ceremony"
	TypeCocktailHour = "cocktail_hour"
	TypePhotos       = "photos"
	TypeReception    = "reception"
	TypeSpeeches     = "speeches"
	TypeFirstDance   = "first_dance"
	TypeCakeCutting  = "cake_cutting"
	TypeSendOff      = "send_off"
	TypeTransport    = "transport"
	TypeOther        = "other"
)

// ValidEventTypes lists every accepted event type.
var ValidEventTypes = []string{
	TypePreparation,
	TypeVendorSetup,
	TypeCeremony,
	TypeCocktailHour,
	TypePhotos,
	TypeReception,
	TypeSpeeches,
	TypeFirstDance,
	TypeCakeCutting,
	TypeSendOff,
	TypeTransport,
	TypeOther,
}

// ValidStatuses lists every accepted event status.
var ValidStatuses = []string{
	StatusUpcoming,
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusDelayed,
}

var validTypeSet = toSet(ValidEventTypes)
var validStatusSet = toSet(ValidStatuses)

func toSet(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

// ValidEventType reports whether t is a known event type.
func ValidEventType(t string) bool {
	return validTypeSet[t]
}

// ValidStatus reports whether s is a known event status.
func ValidStatus(s string) bool {
	return validStatusSet[s]
}

// Config holds the per-project timeline settings.
type Config struct {
	ID               string     `json:"id"`
	Mode             string     `json:"mode"`
	Finalized        bool       `json:"finalized"`
	ClientLastViewed *time.Time `json:"clientLastViewed,omitempty"`
}

// Event is a single entry on a timeline. StartTime and EndTime are
// optional absolute instants; DurationMin is minutes, zero meaning unset.
// An event with neither an end nor a duration is a point-in-time marker.
type Event struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	ItemName    string     `json:"itemName"`
	Description string     `json:"description,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	DurationMin int        `json:"duration,omitempty"`
	Status      string     `json:"status"`
	LocationID  string     `json:"locationId,omitempty"`
}

// Category is carried on the aggregate for display grouping. The engine
// round-trips categories untouched.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List is the whole timeline aggregate: config, categories, and events.
// It is persisted and loaded as a single unit.
type List struct {
	Config     Config     `json:"config"`
	Categories []Category `json:"categories,omitempty"`
	Items      []Event    `json:"items"`
}

// Clone returns a deep copy of the aggregate so callers can transform
// state without mutating a shared snapshot.
func (l *List) Clone() *List {
	out := &List{Config: l.Config}
	if l.Config.ClientLastViewed != nil {
		t := *l.Config.ClientLastViewed
		out.Config.ClientLastViewed = &t
	}
	if l.Categories != nil {
		out.Categories = make([]Category, len(l.Categories))
		copy(out.Categories, l.Categories)
	}
	out.Items = make([]Event, len(l.Items))
	for i, ev := range l.Items {
		out.Items[i] = ev.clone()
	}
	return out
}

func (e Event) clone() Event {
	if e.StartTime != nil {
		t := *e.StartTime
		e.StartTime = &t
	}
	if e.EndTime != nil {
		t := *e.EndTime
		e.EndTime = &t
	}
	return e
}

// FindEvent returns the index of the event with the given ID, or -1.
func (l *List) FindEvent(id string) int {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return i
		}
	}
	return -1
}
