package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/timeline"
)

func keyMsg(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel() Model {
	m := newModel("test-project", time.UTC)
	m.now = time.Date(2025, 6, 14, 10, 10, 0, 0, time.UTC)
	return m
}

func snapshot(events ...timeline.Event) snapshotMsg {
	return snapshotMsg{list: timeline.List{
		Config: timeline.Config{Mode: timeline.ModeActive},
		Items:  events,
	}}
}

func event(name string, start time.Time, durationMin int) timeline.Event {
	s := start
	return timeline.Event{
		ID:          name,
		Type:        timeline.TypeOther,
		ItemName:    name,
		StartTime:   &s,
		DurationMin: durationMin,
	}
}

func TestViewBeforeFirstSnapshot(t *testing.T) {
	m := testModel()
	view := m.View()
	if !strings.Contains(view, "waiting for timeline") {
		t.Errorf("expected waiting state, got:\n%s", view)
	}
}

func TestViewRendersCurrentEventWithProgress(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(snapshot(
		event("Ceremony", time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC), 60),
		event("Reception", time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC), 120),
	))
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "▶") {
		t.Errorf("expected current-event marker:\n%s", view)
	}
	if !strings.Contains(view, "%") {
		t.Errorf("expected progress bar:\n%s", view)
	}
	if !strings.Contains(view, "next: Reception") {
		t.Errorf("expected next-event footer:\n%s", view)
	}
}

func TestViewShowsFinalizedFlag(t *testing.T) {
	m := testModel()
	msg := snapshot()
	msg.list.Config.Finalized = true
	updated, _ := m.Update(msg)
	view := updated.(Model).View()
	if !strings.Contains(view, "FINALIZED") {
		t.Errorf("expected finalized marker:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	// Quit command must be issued for q.
	m := testModel()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "□□□□□□□□ 0%"},
		{50, "■■■■□□□□ 50%"},
		{100, "■■■■■■■■ 100%"},
		{150, "■■■■■■■■ 100%"},
		{-10, "□□□□□□□□ 0%"},
	}
	for _, tt := range tests {
		if got := renderBar(tt.percent, 8); got != tt.want {
			t.Errorf("renderBar(%.0f) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}
