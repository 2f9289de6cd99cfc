// Package tui implements the live day-of timeline monitor.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/timeline"
)

const barWidth = 24

type snapshotMsg struct{ list timeline.List }

type subErrMsg struct{ err error }

type tickMsg time.Time

// Model renders one project's timeline and refreshes it every second,
// plus whenever the store delivers a new snapshot.
type Model struct {
	project string
	loc     *time.Location

	list  *timeline.List
	err   error
	now   time.Time
	width int

	spinner spinner.Model
}

func newModel(project string, loc *time.Location) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		project: project,
		loc:     loc,
		now:     time.Now(),
		spinner: sp,
	}
}

// Run starts the monitor. It subscribes to the engine so edits made
// from another terminal show up without a restart.
func Run(eng *timeline.Engine, project string, loc *time.Location) error {
	p := tea.NewProgram(newModel(project, loc), tea.WithAltScreen())

	cancel, err := eng.Subscribe(project,
		func(l timeline.List) { p.Send(snapshotMsg{list: l}) },
		func(err error) { p.Send(subErrMsg{err: err}) },
	)
	if err != nil {
		return err
	}
	defer cancel()

	_, err = p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickEverySecond())
}

func tickEverySecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case snapshotMsg:
		list := msg.list
		m.list = &list

	case subErrMsg:
		m.err = msg.err

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickEverySecond()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := m.project
	if m.list != nil {
		title = fmt.Sprintf("%s  [%s]", m.project, m.list.Config.Mode)
		if m.list.Config.Finalized {
			title += "  " + errorStyle.Render("FINALIZED")
		}
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.list == nil {
		b.WriteString(fmt.Sprintf("%s waiting for timeline…\n", m.spinner.View()))
		b.WriteString("\n" + statusBarStyle.Render("q: quit"))
		return b.String()
	}

	items := timeline.RecomputeAll(m.list.Items, m.now)
	sort.SliceStable(items, func(i, j int) bool {
		a, c := items[i].StartTime, items[j].StartTime
		if a == nil {
			return false
		}
		if c == nil {
			return true
		}
		return a.Before(*c)
	})

	if len(items) == 0 {
		b.WriteString(subtleStyle.Render("no events yet"))
		b.WriteString("\n")
	}
	for _, ev := range items {
		b.WriteString(m.renderEvent(ev))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(items))
	return b.String()
}

func (m Model) renderEvent(ev timeline.Event) string {
	start := "--:--"
	if ev.StartTime != nil {
		start = ev.StartTime.In(m.loc).Format("15:04")
	}

	line := fmt.Sprintf("%s  %-28s %s", start, ev.ItemName, ev.Status)

	switch {
	case ev.Status == timeline.StatusCancelled:
		return cancelledStyle.Render(line)
	case ev.Status == timeline.StatusCompleted:
		return subtleStyle.Render(line)
	case ev.Status == timeline.StatusInProgress:
		if p, ok := timeline.ProgressOf(ev, m.now); ok {
			line += "  " + renderBar(p, barWidth)
		}
		return currentStyle.Render("▶ " + line)
	case timeline.IsImminent(ev, m.now):
		return imminentStyle.Render(line)
	default:
		return line
	}
}

func (m Model) renderFooter(items []timeline.Event) string {
	parts := []string{"q: quit"}

	if cur := timeline.CurrentEvent(items, m.now); cur == nil {
		parts = append([]string{m.spinner.View() + " idle"}, parts...)
	}
	if until, ok := timeline.TimeUntilNext(items, m.now); ok {
		next := timeline.NextEvent(items, m.now)
		parts = append([]string{fmt.Sprintf("next: %s in %s", next.ItemName, until.Round(time.Second))}, parts...)
	}

	return statusBarStyle.Render(strings.Join(parts, " • "))
}
