package timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daybook/internal/util"
)

// Store is the persistence port the engine drives. One aggregate
// document exists per project; Save replaces the whole unit. Subscribe
// delivers the current snapshot and then every saved snapshot in order,
// until the returned cancel function is called.
type Store interface {
	Load(ctx context.Context, projectID string) (*List, error)
	Save(ctx context.Context, projectID string, list *List) error
	Subscribe(projectID string, onSnapshot func(List), onError func(error)) (func(), error)
}

// Engine exposes the timeline operations. Each call loads the current
// aggregate, applies the finalization guard and validation, and persists
// the transformed copy; nothing is cached between calls.
type Engine struct {
	store Store

	// Clock supplies the current instant for status derivation.
	// Overridable in tests; defaults to time.Now.
	Clock func() time.Time
}

// NewEngine creates an engine over the given store.
func NewEngine(s Store) *Engine {
	return &Engine{store: s, Clock: time.Now}
}

// Initialize creates an empty timeline for the project: setup mode, not
// finalized, no events. Fails with ErrTimelineExists when one is already
// persisted.
func (e *Engine) Initialize(ctx context.Context, projectID string) (*List, error) {
	_, err := e.store.Load(ctx, projectID)
	if err == nil {
		return nil, ErrTimelineExists
	}
	if !errors.Is(err, ErrTimelineNotFound) {
		return nil, fmt.Errorf("load timeline: %w", err)
	}

	list := &List{
		Config: Config{
			ID:   util.NewID(),
			Mode: ModeSetup,
		},
		Items: []Event{},
	}
	if err := e.store.Save(ctx, projectID, list); err != nil {
		return nil, fmt.Errorf("save timeline: %w", err)
	}
	return list, nil
}

// ConfigPatch is a partial config update. Nil fields are left untouched.
// ClientLastViewed is set by the client portal and is deliberately not
// patchable here.
type ConfigPatch struct {
	Mode      *string
	Finalized *bool
}

// Reconfigure merges a partial config into the stored one. The guard
// runs first, so once finalized every reconfigure fails, including an
// attempt to clear the flag: finalization is monotonic.
func (e *Engine) Reconfigure(ctx context.Context, projectID string, patch ConfigPatch) error {
	list, err := e.load(ctx, projectID)
	if err != nil {
		return err
	}
	if err := EnsureNotFinalized(list.Config); err != nil {
		return err
	}
	if patch.Mode != nil {
		if !ValidMode(*patch.Mode) {
			return &ValidationError{Fields: []FieldError{{"mode", fmt.Sprintf("unknown mode %q", *patch.Mode)}}}
		}
		list.Config.Mode = *patch.Mode
	}
	if patch.Finalized != nil {
		list.Config.Finalized = *patch.Finalized
	}
	return e.save(ctx, projectID, list)
}

// Finalize sets the one-way finalized flag.
func (e *Engine) Finalize(ctx context.Context, projectID string) error {
	finalized := true
	return e.Reconfigure(ctx, projectID, ConfigPatch{Finalized: &finalized})
}

// AddEvent validates the input against the stored set, assigns a fresh
// event ID, appends, and persists. Returns the new ID.
func (e *Engine) AddEvent(ctx context.Context, projectID string, input Event) (string, error) {
	list, err := e.load(ctx, projectID)
	if err != nil {
		return "", err
	}
	if err := EnsureNotFinalized(list.Config); err != nil {
		return "", err
	}

	input.ID = util.NewID()
	if err := ValidateEvent(input); err != nil {
		return "", err
	}
	if err := EnsureOrdering(input); err != nil {
		return "", err
	}
	if err := ValidateAgainstExisting(input, list.Items); err != nil {
		return "", err
	}

	list.Items = append(list.Items, input)
	if err := e.save(ctx, projectID, list); err != nil {
		return "", err
	}
	return input.ID, nil
}

// UpdateEvent replaces the stored event with the same ID. Timing checks
// exclude the event itself, so an event may keep occupying its own
// prior slot.
func (e *Engine) UpdateEvent(ctx context.Context, projectID string, ev Event) error {
	list, err := e.load(ctx, projectID)
	if err != nil {
		return err
	}
	if err := EnsureNotFinalized(list.Config); err != nil {
		return err
	}

	if err := ValidateEvent(ev); err != nil {
		return err
	}
	if err := EnsureOrdering(ev); err != nil {
		return err
	}
	idx := list.FindEvent(ev.ID)
	if idx < 0 {
		return fmt.Errorf("%s: %w", ev.ID, ErrEventNotFound)
	}
	if err := ValidateAgainstExisting(ev, list.Items); err != nil {
		return err
	}

	list.Items[idx] = ev
	return e.save(ctx, projectID, list)
}

// DeleteEvent removes the event with the given ID. Deleting an unknown
// ID succeeds without a write: removal is idempotent.
func (e *Engine) DeleteEvent(ctx context.Context, projectID, eventID string) error {
	list, err := e.load(ctx, projectID)
	if err != nil {
		return err
	}
	if err := EnsureNotFinalized(list.Config); err != nil {
		return err
	}

	idx := list.FindEvent(eventID)
	if idx < 0 {
		return nil
	}
	list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
	return e.save(ctx, projectID, list)
}

// ReplaceAllEvents swaps the entire event set in one write. Every event
// is shape-checked and the set is validated pairwise; one bad event
// rejects the whole batch and nothing is persisted. Events without an ID
// get a fresh one.
func (e *Engine) ReplaceAllEvents(ctx context.Context, projectID string, events []Event) error {
	list, err := e.load(ctx, projectID)
	if err != nil {
		return err
	}
	if err := EnsureNotFinalized(list.Config); err != nil {
		return err
	}

	incoming := make([]Event, len(events))
	seen := make(map[string]bool, len(events))
	for i, ev := range events {
		if ev.ID == "" {
			ev.ID = util.NewID()
		}
		if seen[ev.ID] {
			return &ValidationError{Fields: []FieldError{{"id", fmt.Sprintf("duplicate event id %q", ev.ID)}}}
		}
		seen[ev.ID] = true
		if err := ValidateEvent(ev); err != nil {
			return err
		}
		incoming[i] = ev
	}
	if err := ValidateSet(incoming); err != nil {
		return err
	}

	list.Items = incoming
	return e.save(ctx, projectID, list)
}

// Fetch loads the aggregate and rederives every event status for the
// current instant. The persisted status fields are left as written; they
// may lag until the next successful mutation.
func (e *Engine) Fetch(ctx context.Context, projectID string) (*List, error) {
	list, err := e.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	list.Items = RecomputeAll(list.Items, e.Clock())
	return list, nil
}

// Subscribe passes through to the store, rederiving statuses on every
// delivered snapshot.
func (e *Engine) Subscribe(projectID string, onSnapshot func(List), onError func(error)) (func(), error) {
	return e.store.Subscribe(projectID, func(l List) {
		l.Items = RecomputeAll(l.Items, e.Clock())
		onSnapshot(l)
	}, onError)
}

func (e *Engine) load(ctx context.Context, projectID string) (*List, error) {
	list, err := e.store.Load(ctx, projectID)
	if err != nil {
		if errors.Is(err, ErrTimelineNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	return list, nil
}

func (e *Engine) save(ctx context.Context, projectID string, list *List) error {
	if err := e.store.Save(ctx, projectID, list); err != nil {
		return fmt.Errorf("save timeline: %w", err)
	}
	return nil
}
