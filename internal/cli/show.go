package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"daybook/internal/timeline"
	"daybook/internal/util"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the timeline with live statuses",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFAF"))
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	finalizedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AF5F5F"))

	statusStyles = map[string]lipgloss.Style{
		timeline.StatusInProgress: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87AF87")),
		timeline.StatusCompleted:  subtleStyle,
		timeline.StatusCancelled:  lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#666666")),
		timeline.StatusDelayed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#AF875F")),
	}
)

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	list, err := a.engine.Fetch(cmd.Context(), a.project)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s  [%s]", a.project, list.Config.Mode)
	if list.Config.Finalized {
		title += "  " + finalizedStyle.Render("FINALIZED")
	}
	fmt.Println(headerStyle.Render(title))

	if len(list.Items) == 0 {
		fmt.Println(subtleStyle.Render("no events yet"))
		return nil
	}

	items := append([]timeline.Event(nil), list.Items...)
	sortByStart(items)

	for _, ev := range items {
		fmt.Println(renderRow(ev, a))
	}

	now := a.engine.Clock()
	if until, ok := timeline.TimeUntilNext(items, now); ok {
		next := timeline.NextEvent(items, now)
		fmt.Println(subtleStyle.Render(fmt.Sprintf("next: %s in %s", next.ItemName, until.Round(time.Second))))
	}
	return nil
}

// sortByStart orders events by start time, unscheduled events last.
func sortByStart(items []timeline.Event) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].StartTime, items[j].StartTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}

func renderRow(ev timeline.Event, a *app) string {
	start := FormatClock(ev.StartTime, a.loc)
	end := "     "
	if e, ok := timeline.EffectiveEnd(ev); ok {
		end = FormatClock(&e, a.loc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s-%s  %-10s  %-30s  %s", start, end, ev.Type, truncate(ev.ItemName, 30), ev.Status)
	fmt.Fprintf(&b, "  %s", subtleStyle.Render(util.ShortID(ev.ID)))

	line := b.String()
	if style, ok := statusStyles[ev.Status]; ok {
		return style.Render(line)
	}
	return line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
