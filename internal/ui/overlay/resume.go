package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/core/timer"
	"github.com/riordanpawley/valerian/internal/domain"
)

// ResumeRequestedMsg carries the resumed mode and the bank adjustment
// chosen for the paused window.
type ResumeRequestedMsg struct {
	Mode       timer.Mode
	BankAdjust int
}

// PauseTickMsg refreshes the accumulated pause seconds while the resume
// dialog is open.
type PauseTickMsg struct {
	Total int
}

const (
	resumeStageAttribution = iota
	resumeStageMode
)

type resumeAttribution int

const (
	attributeNone resumeAttribution = iota
	attributeWork
	attributeRest
)

// ResumeDialog walks through ending an all-pause: first how the paused
// time should count against the bank, then which mode to resume into.
// Like the grace dialog it cannot be abandoned, only stepped back.
type ResumeDialog struct {
	total       int
	stage       int
	attribution resumeAttribution
	cursor      int
	styles      *Styles
}

type resumeItem struct {
	label       string
	attribution resumeAttribution
	mode        timer.Mode
}

// NewResumeDialog creates the resume dialog for a pause that has lasted
// total seconds so far.
func NewResumeDialog(total int) *ResumeDialog {
	return &ResumeDialog{
		total:  total,
		stage:  resumeStageAttribution,
		styles: New(),
	}
}

// Init initializes the dialog
func (d *ResumeDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *ResumeDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PauseTickMsg:
		d.total = msg.Total
		return d, nil

	case tea.KeyMsg:
		items := d.items()
		switch msg.String() {
		case "esc":
			// Step back to the attribution question; the pause itself
			// stays open until a mode is picked.
			if d.stage == resumeStageMode {
				d.stage = resumeStageAttribution
				d.cursor = 0
			}
			return d, nil

		case "j", "down":
			d.cursor = (d.cursor + 1) % len(items)
			return d, nil

		case "k", "up":
			d.cursor = (d.cursor - 1 + len(items)) % len(items)
			return d, nil

		case "enter", " ":
			return d, d.pick(items[d.cursor])

		case "1", "2", "3":
			idx := int(msg.String()[0] - '1')
			if idx < len(items) {
				return d, d.pick(items[idx])
			}
			return d, nil
		}
	}

	return d, nil
}

// View renders the dialog
func (d *ResumeDialog) View() string {
	var b strings.Builder

	b.WriteString(d.styles.MenuItem.Render(fmt.Sprintf("Paused for: %s", domain.FormatClock(d.total))))
	b.WriteString("\n\n")

	prompt := "What was the pause, really?"
	if d.stage == resumeStageMode {
		prompt = "Resume into which mode?"
	}
	b.WriteString(d.styles.MenuHeader.Render(prompt))
	b.WriteString("\n")

	for i, item := range d.items() {
		style := d.styles.MenuItem
		if i == d.cursor {
			style = d.styles.MenuItemActive
		}
		key := d.styles.MenuKey.Render(fmt.Sprintf("[%d]", i+1))
		b.WriteString(key + " " + style.Render(item.label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := "1-3: choose • Enter: confirm"
	if d.stage == resumeStageMode {
		footer = "1-2: choose • Esc: back"
	}
	b.WriteString(d.styles.Footer.Render(footer))

	return b.String()
}

// Title returns the dialog title
func (d *ResumeDialog) Title() string {
	return "Resume"
}

// Size returns the dialog dimensions
func (d *ResumeDialog) Size() (width, height int) {
	return 48, len(d.items()) + 9
}

// items builds the options for the current stage.
func (d *ResumeDialog) items() []resumeItem {
	if d.stage == resumeStageMode {
		return []resumeItem{
			{label: "Resume work", mode: timer.ModeWork},
			{label: "Resume break", mode: timer.ModeBreak},
		}
	}
	return []resumeItem{
		{
			label:       fmt.Sprintf("I was working (+%s bank)", domain.FormatClock(timer.Earn(d.total))),
			attribution: attributeWork,
		},
		{
			label:       fmt.Sprintf("I was resting (-%s bank)", domain.FormatClock(timer.Spend(d.total))),
			attribution: attributeRest,
		},
		{label: "Just resume, no attribution", attribution: attributeNone},
	}
}

// pick advances the stage or emits the final resume request. The bank
// adjustment is computed from the total at confirmation time, so seconds
// spent deciding still count.
func (d *ResumeDialog) pick(item resumeItem) tea.Cmd {
	if d.stage == resumeStageAttribution {
		d.attribution = item.attribution
		d.stage = resumeStageMode
		d.cursor = 0
		return nil
	}

	var adjust int
	switch d.attribution {
	case attributeWork:
		adjust = timer.Earn(d.total)
	case attributeRest:
		adjust = -timer.Spend(d.total)
	}

	mode := item.mode
	return tea.Batch(
		func() tea.Msg { return ResumeRequestedMsg{Mode: mode, BankAdjust: adjust} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}
