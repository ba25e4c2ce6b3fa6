package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/core/timer"
	"github.com/riordanpawley/valerian/internal/domain"
)

// GraceResolvedMsg reports the choice picked in the grace dialog.
type GraceResolvedMsg struct {
	Choice timer.GraceChoice
}

// GraceTickMsg refreshes the accumulated grace seconds while the dialog
// is open.
type GraceTickMsg struct {
	Total int
}

// GraceDialog asks what the time since an interval boundary was spent on.
// Below the threshold only the next-mode choices appear; once enough time
// accumulates, the retroactive attribution choices unlock. The dialog
// cannot be dismissed without picking a choice.
type GraceDialog struct {
	context timer.GraceContext
	total   int
	cursor  int
	styles  *Styles
}

type graceItem struct {
	choice timer.GraceChoice
	label  string
}

// NewGraceDialog creates the resolver dialog for a boundary.
func NewGraceDialog(context timer.GraceContext, total int) *GraceDialog {
	return &GraceDialog{
		context: context,
		total:   total,
		styles:  New(),
	}
}

// Init initializes the dialog
func (d *GraceDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *GraceDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GraceTickMsg:
		d.total = msg.Total
		return d, nil

	case tea.KeyMsg:
		items := d.items()
		switch msg.String() {
		case "j", "down":
			d.cursor = (d.cursor + 1) % len(items)
			return d, nil

		case "k", "up":
			d.cursor = (d.cursor - 1 + len(items)) % len(items)
			return d, nil

		case "enter", " ":
			return d, d.resolve(items[d.cursor].choice)

		case "1", "2", "3", "4":
			idx := int(msg.String()[0] - '1')
			if idx < len(items) {
				return d, d.resolve(items[idx].choice)
			}
			return d, nil
		}
		// No escape: a boundary is closed only by resolving it.
	}

	return d, nil
}

// View renders the dialog
func (d *GraceDialog) View() string {
	var b strings.Builder

	b.WriteString(d.styles.MenuItem.Render(fmt.Sprintf("Unattributed time: %s", domain.FormatClock(d.total))))
	b.WriteString("\n\n")

	items := d.items()
	for i, item := range items {
		style := d.styles.MenuItem
		if i == d.cursor {
			style = d.styles.MenuItemActive
		}
		key := d.styles.MenuKey.Render(fmt.Sprintf("[%d]", i+1))
		b.WriteString(key + " " + style.Render(item.label))
		b.WriteString("\n")
	}

	if d.total < timer.GraceThreshold {
		b.WriteString("\n")
		b.WriteString(d.styles.MenuItemDisabled.Render(
			fmt.Sprintf("attribution choices unlock at %ds", timer.GraceThreshold)))
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Footer.Render("1-4: choose • j/k: move • Enter: confirm"))

	return b.String()
}

// Title returns the dialog title
func (d *GraceDialog) Title() string {
	if d.context == timer.GraceAfterBreak {
		return "Break Over"
	}
	return "Interval Complete"
}

// Size returns the dialog dimensions
func (d *GraceDialog) Size() (width, height int) {
	return 48, len(d.items()) + 9
}

// items builds the choice list for the current accumulated total.
func (d *GraceDialog) items() []graceItem {
	var items []graceItem
	if d.context == timer.GraceAfterBreak {
		items = append(items,
			graceItem{choice: timer.ChoiceNextWork, label: "Back to work"},
			graceItem{choice: timer.ChoiceNextBreak, label: "Keep resting"},
		)
	} else {
		items = append(items,
			graceItem{choice: timer.ChoiceNextWork, label: "Continue working"},
			graceItem{choice: timer.ChoiceNextBreak, label: "Start break"},
		)
	}

	if d.total >= timer.GraceThreshold {
		items = append(items,
			graceItem{
				choice: timer.ChoiceWasWorking,
				label:  fmt.Sprintf("I was working (+%s bank)", domain.FormatClock(timer.Earn(d.total))),
			},
			graceItem{
				choice: timer.ChoiceWasResting,
				label:  fmt.Sprintf("I was resting (-%s bank)", domain.FormatClock(timer.Spend(d.total))),
			},
		)
	}
	return items
}

// resolve emits the resolution and closes the dialog.
func (d *GraceDialog) resolve(choice timer.GraceChoice) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return GraceResolvedMsg{Choice: choice} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}
