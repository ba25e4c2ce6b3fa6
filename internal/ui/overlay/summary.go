package overlay

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/domain"
)

// SummaryClosedMsg reports that the session summary was dismissed.
type SummaryClosedMsg struct{}

// SummaryOverlay shows the finished session's totals. Dismissing it is
// what returns the timer to idle, so every key that closes an overlay
// also announces the close.
type SummaryOverlay struct {
	stats  domain.SessionStats
	styles *Styles
}

// NewSummaryOverlay creates the summary for a finished session.
func NewSummaryOverlay(stats domain.SessionStats) *SummaryOverlay {
	return &SummaryOverlay{
		stats:  stats,
		styles: New(),
	}
}

// Init initializes the overlay
func (o *SummaryOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (o *SummaryOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q", " ":
			return o, tea.Batch(
				func() tea.Msg { return SummaryClosedMsg{} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	return o, nil
}

// View renders the summary
func (o *SummaryOverlay) View() string {
	var b strings.Builder

	rows := []struct {
		label string
		value string
	}{
		{"Focused", domain.FormatMinutes(o.stats.WorkSeconds)},
		{"Rested", domain.FormatMinutes(o.stats.BreakSeconds)},
		{"Pomodoros", fmt.Sprintf("%d", o.stats.Pomodoros)},
		{"Tasks done", fmt.Sprintf("%d", o.stats.TasksCompleted)},
	}
	for _, row := range rows {
		b.WriteString(o.styles.MenuItem.Render(fmt.Sprintf("%-12s", row.label)))
		b.WriteString(o.styles.MenuCount.Render(row.value))
		b.WriteString("\n")
	}

	if cats := o.categories(); len(cats) > 0 {
		b.WriteString("\n")
		b.WriteString(o.styles.MenuHeader.Render("By category"))
		b.WriteString("\n")
		for _, c := range cats {
			b.WriteString(o.styles.MenuItem.Render(fmt.Sprintf("  %-14s", c.name)))
			b.WriteString(o.styles.MenuCount.Render(domain.FormatMinutes(c.seconds)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(o.styles.Footer.Render("Enter: back to idle"))

	return b.String()
}

// Title returns the overlay title
func (o *SummaryOverlay) Title() string {
	return "Session Summary"
}

// Size returns the overlay dimensions
func (o *SummaryOverlay) Size() (width, height int) {
	return 40, len(o.categories()) + 12
}

type categoryRow struct {
	name    string
	seconds int
}

// categories lists the per-category work split, largest first.
func (o *SummaryOverlay) categories() []categoryRow {
	var cats []categoryRow
	for name, seconds := range o.stats.ByCategory {
		cats = append(cats, categoryRow{name: name, seconds: seconds})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].seconds != cats[j].seconds {
			return cats[i].seconds > cats[j].seconds
		}
		return cats[i].name < cats[j].name
	})
	return cats
}
