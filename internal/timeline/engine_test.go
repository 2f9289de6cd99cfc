package timeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"daybook/internal/store"
	"daybook/internal/timeline"
)

const project = "proj-1"

func clock(hour, min int) time.Time {
	return time.Date(2025, 6, 14, hour, min, 0, 0, time.UTC)
}

func newEngine(t *testing.T) (*timeline.Engine, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	eng := timeline.NewEngine(st)
	eng.Clock = func() time.Time { return clock(9, 0) }
	if _, err := eng.Initialize(context.Background(), project); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return eng, st
}

func eventInput(name string, start time.Time, durationMin int) timeline.Event {
	s := start
	return timeline.Event{
		Type:        timeline.TypeOther,
		ItemName:    name,
		StartTime:   &s,
		DurationMin: durationMin,
	}
}

func TestInitialize(t *testing.T) {
	st := store.NewMemoryStore()
	eng := timeline.NewEngine(st)
	ctx := context.Background()

	list, err := eng.Initialize(ctx, project)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if list.Config.ID == "" {
		t.Error("expected a generated config ID")
	}
	if list.Config.Mode != timeline.ModeSetup {
		t.Errorf("mode = %q, want %q", list.Config.Mode, timeline.ModeSetup)
	}
	if list.Config.Finalized {
		t.Error("new timeline must not be finalized")
	}
	if len(list.Items) != 0 {
		t.Errorf("expected no events, got %d", len(list.Items))
	}

	if _, err := eng.Initialize(ctx, project); !errors.Is(err, timeline.ErrTimelineExists) {
		t.Fatalf("expected ErrTimelineExists, got %v", err)
	}
}

func TestAddEventBufferScenarios(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	if _, err := eng.AddEvent(ctx, project, eventInput("first", clock(10, 0), 60)); err != nil {
		t.Fatalf("add first: %v", err)
	}

	// Four minutes after the first event's end: under the minimum buffer.
	_, err := eng.AddEvent(ctx, project, eventInput("too close", clock(11, 4), 30))
	if !timeline.IsTimingCode(err, timeline.TimingInsufficientBuffer) {
		t.Fatalf("expected insufficient_buffer, got %v", err)
	}

	// Five minutes: exactly the minimum.
	if _, err := eng.AddEvent(ctx, project, eventInput("ok", clock(11, 5), 30)); err != nil {
		t.Fatalf("add with 5-minute gap: %v", err)
	}
}

func TestAddEventConflict(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	first := eventInput("first", clock(10, 0), 0)
	end := clock(11, 0)
	first.EndTime = &end
	if _, err := eng.AddEvent(ctx, project, first); err != nil {
		t.Fatalf("add first: %v", err)
	}

	contained := eventInput("contained", clock(10, 30), 0)
	cEnd := clock(10, 45)
	contained.EndTime = &cEnd
	if _, err := eng.AddEvent(ctx, project, contained); !timeline.IsTimingCode(err, timeline.TimingConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAddEventOrderingBeforeConflict(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	if _, err := eng.AddEvent(ctx, project, eventInput("first", clock(10, 0), 60)); err != nil {
		t.Fatalf("add first: %v", err)
	}

	backwards := eventInput("backwards", clock(10, 30), 0)
	end := clock(10, 0)
	backwards.EndTime = &end
	_, err := eng.AddEvent(ctx, project, backwards)
	if !timeline.IsTimingCode(err, timeline.TimingInvalidOrdering) {
		t.Fatalf("expected invalid_ordering before conflict check, got %v", err)
	}
}

func TestAddEventAssignsFreshID(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	input := eventInput("e", clock(10, 0), 30)
	input.ID = "caller-chosen"
	id, err := eng.AddEvent(ctx, project, input)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == "" || id == "caller-chosen" {
		t.Errorf("expected engine-generated ID, got %q", id)
	}
}

func TestUpdateEvent(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	id, err := eng.AddEvent(ctx, project, eventInput("movable", clock(10, 0), 60))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := eng.AddEvent(ctx, project, eventInput("anchor", clock(13, 0), 60)); err != nil {
		t.Fatalf("add anchor: %v", err)
	}

	t.Run("same slot never self-conflicts", func(t *testing.T) {
		ev := eventInput("movable", clock(10, 0), 60)
		ev.ID = id
		if err := eng.UpdateEvent(ctx, project, ev); err != nil {
			t.Fatalf("update into own slot: %v", err)
		}
	})

	t.Run("moving onto another event conflicts", func(t *testing.T) {
		ev := eventInput("movable", clock(13, 30), 60)
		ev.ID = id
		if err := eng.UpdateEvent(ctx, project, ev); !timeline.IsTimingCode(err, timeline.TimingConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ev := eventInput("ghost", clock(16, 0), 30)
		ev.ID = "missing"
		if err := eng.UpdateEvent(ctx, project, ev); !errors.Is(err, timeline.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestDeleteEventIdempotent(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	id, err := eng.AddEvent(ctx, project, eventInput("e", clock(10, 0), 30))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := eng.DeleteEvent(ctx, project, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Deleting again, or deleting garbage, is a quiet no-op.
	if err := eng.DeleteEvent(ctx, project, id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := eng.DeleteEvent(ctx, project, "never-existed"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}

	list, err := eng.Fetch(ctx, project)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(list.Items) != 0 {
		t.Errorf("expected empty timeline, got %d events", len(list.Items))
	}
}

func TestReplaceAllEvents(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	if _, err := eng.AddEvent(ctx, project, eventInput("old", clock(8, 0), 30)); err != nil {
		t.Fatalf("add: %v", err)
	}

	t.Run("batch replaces prior set", func(t *testing.T) {
		batch := []timeline.Event{
			eventInput("a", clock(10, 0), 60),
			eventInput("b", clock(11, 5), 30),
		}
		if err := eng.ReplaceAllEvents(ctx, project, batch); err != nil {
			t.Fatalf("replace: %v", err)
		}
		list, err := eng.Fetch(ctx, project)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(list.Items) != 2 {
			t.Fatalf("expected 2 events, got %d", len(list.Items))
		}
		for _, ev := range list.Items {
			if ev.ID == "" {
				t.Errorf("event %q missing generated ID", ev.ItemName)
			}
			if ev.ItemName == "old" {
				t.Error("prior event survived replacement")
			}
		}
	})

	t.Run("one bad event rejects whole batch", func(t *testing.T) {
		before, _ := eng.Fetch(ctx, project)
		batch := []timeline.Event{
			eventInput("fine", clock(14, 0), 30),
			eventInput("colliding", clock(14, 15), 30),
		}
		if err := eng.ReplaceAllEvents(ctx, project, batch); !timeline.IsTimingCode(err, timeline.TimingConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		after, _ := eng.Fetch(ctx, project)
		if len(after.Items) != len(before.Items) {
			t.Error("failed batch must not change persisted state")
		}
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		a := eventInput("a", clock(16, 0), 30)
		a.ID = "dup"
		b := eventInput("b", clock(17, 0), 30)
		b.ID = "dup"
		err := eng.ReplaceAllEvents(ctx, project, []timeline.Event{a, b})
		if !timeline.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestFetchRecomputesStatuses(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	if _, err := eng.AddEvent(ctx, project, eventInput("morning", clock(8, 0), 30)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := eng.AddEvent(ctx, project, eventInput("current", clock(8, 45), 60)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := eng.AddEvent(ctx, project, eventInput("evening", clock(18, 0), 60)); err != nil {
		t.Fatalf("add: %v", err)
	}

	list, err := eng.Fetch(ctx, project)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	want := map[string]string{
		"morning": timeline.StatusCompleted,
		"current": timeline.StatusInProgress,
		"evening": timeline.StatusUpcoming,
	}
	for _, ev := range list.Items {
		if ev.Status != want[ev.ItemName] {
			t.Errorf("%s: status = %q, want %q", ev.ItemName, ev.Status, want[ev.ItemName])
		}
	}
}

func TestFinalizationIsMonotonic(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	id, err := eng.AddEvent(ctx, project, eventInput("locked-in", clock(10, 0), 60))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := eng.Finalize(ctx, project); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if _, err := eng.AddEvent(ctx, project, eventInput("late", clock(12, 0), 30)); !errors.Is(err, timeline.ErrFinalized) {
		t.Errorf("add after finalize: got %v", err)
	}
	ev := eventInput("locked-in", clock(10, 0), 90)
	ev.ID = id
	if err := eng.UpdateEvent(ctx, project, ev); !errors.Is(err, timeline.ErrFinalized) {
		t.Errorf("update after finalize: got %v", err)
	}
	if err := eng.DeleteEvent(ctx, project, id); !errors.Is(err, timeline.ErrFinalized) {
		t.Errorf("delete after finalize: got %v", err)
	}
	mode := timeline.ModeReview
	if err := eng.Reconfigure(ctx, project, timeline.ConfigPatch{Mode: &mode}); !errors.Is(err, timeline.ErrFinalized) {
		t.Errorf("reconfigure after finalize: got %v", err)
	}
	// Even clearing the flag is refused: finalization only moves one way.
	unfinalize := false
	if err := eng.Reconfigure(ctx, project, timeline.ConfigPatch{Finalized: &unfinalize}); !errors.Is(err, timeline.ErrFinalized) {
		t.Errorf("unfinalize attempt: got %v", err)
	}

	// Reads keep working and return the untouched set.
	list, err := eng.Fetch(ctx, project)
	if err != nil {
		t.Fatalf("fetch after finalize: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != id {
		t.Errorf("fetch after finalize returned %+v", list.Items)
	}
}

func TestReconfigureMode(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	mode := timeline.ModeActive
	if err := eng.Reconfigure(ctx, project, timeline.ConfigPatch{Mode: &mode}); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	list, err := eng.Fetch(ctx, project)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if list.Config.Mode != timeline.ModeActive {
		t.Errorf("mode = %q, want %q", list.Config.Mode, timeline.ModeActive)
	}

	bad := "archived"
	if err := eng.Reconfigure(ctx, project, timeline.ConfigPatch{Mode: &bad}); !timeline.IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown mode, got %v", err)
	}
}

func TestEngineSubscribeRecomputes(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	if _, err := eng.AddEvent(ctx, project, eventInput("running", clock(8, 30), 60)); err != nil {
		t.Fatalf("add: %v", err)
	}

	var got []timeline.List
	cancel, err := eng.Subscribe(project, func(l timeline.List) {
		got = append(got, l)
	}, nil)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	if len(got) == 0 {
		t.Fatal("expected initial snapshot")
	}
	last := got[len(got)-1]
	if len(last.Items) != 1 || last.Items[0].Status != timeline.StatusInProgress {
		t.Errorf("snapshot statuses not recomputed: %+v", last.Items)
	}
}

func TestOperationsOnMissingTimeline(t *testing.T) {
	eng := timeline.NewEngine(store.NewMemoryStore())
	ctx := context.Background()

	if _, err := eng.Fetch(ctx, "nope"); !errors.Is(err, timeline.ErrTimelineNotFound) {
		t.Errorf("fetch: got %v", err)
	}
	if _, err := eng.AddEvent(ctx, "nope", eventInput("e", clock(10, 0), 30)); !errors.Is(err, timeline.ErrTimelineNotFound) {
		t.Errorf("add: got %v", err)
	}
	if err := eng.DeleteEvent(ctx, "nope", "id"); !errors.Is(err, timeline.ErrTimelineNotFound) {
		t.Errorf("delete: got %v", err)
	}
}
