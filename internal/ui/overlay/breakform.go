package overlay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// BreakAddedMsg carries a validated new pinned break.
type BreakAddedMsg struct {
	Break domain.ScheduleBreak
}

// BreakDeletedMsg names a pinned break to remove.
type BreakDeletedMsg struct {
	ID string
}

const (
	breakModeList = iota
	breakModeForm
)

const (
	breakFocusLabel = iota
	breakFocusStart
	breakFocusDuration
	breakFocusCount
)

// BreakEditor manages the schedule's pinned breaks: a list with delete,
// and an add form validated on submit. Edits apply immediately; the local
// copy only mirrors what was announced.
type BreakEditor struct {
	breaks []domain.ScheduleBreak
	mode   int
	cursor int

	label    textinput.Model
	start    textinput.Model
	duration textinput.Model
	focus    int
	errText  string

	styles *Styles
}

// NewBreakEditor creates the editor over the current pinned breaks.
func NewBreakEditor(breaks []domain.ScheduleBreak) *BreakEditor {
	li := textinput.New()
	li.Placeholder = "Lunch"
	li.CharLimit = 40
	li.Width = 24

	si := textinput.New()
	si.Placeholder = "12:30"
	si.CharLimit = 5
	si.Width = 8

	di := textinput.New()
	di.Placeholder = "30"
	di.CharLimit = 3
	di.Width = 6

	return &BreakEditor{
		breaks:   append([]domain.ScheduleBreak(nil), breaks...),
		label:    li,
		start:    si,
		duration: di,
		styles:   New(),
	}
}

// Init initializes the editor
func (e *BreakEditor) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (e *BreakEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if e.mode == breakModeForm {
		return e.updateForm(msg)
	}
	return e.updateList(msg)
}

func (e *BreakEditor) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "b":
			return e, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if e.cursor < len(e.breaks)-1 {
				e.cursor++
			}
			return e, nil

		case "k", "up":
			if e.cursor > 0 {
				e.cursor--
			}
			return e, nil

		case "a":
			e.openForm()
			return e, textinput.Blink

		case "d", "x":
			if len(e.breaks) == 0 {
				return e, nil
			}
			id := e.breaks[e.cursor].ID
			e.breaks = append(e.breaks[:e.cursor], e.breaks[e.cursor+1:]...)
			if e.cursor >= len(e.breaks) && e.cursor > 0 {
				e.cursor--
			}
			return e, func() tea.Msg { return BreakDeletedMsg{ID: id} }
		}
	}

	return e, nil
}

func (e *BreakEditor) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			e.mode = breakModeList
			e.errText = ""
			return e, nil

		case "tab":
			e.moveFocus(1)
			return e, nil

		case "shift+tab":
			e.moveFocus(-1)
			return e, nil

		case "enter":
			if e.focus == breakFocusDuration {
				return e, e.submit()
			}
			e.moveFocus(1)
			return e, nil
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case breakFocusLabel:
		e.label, cmd = e.label.Update(msg)
	case breakFocusStart:
		e.start, cmd = e.start.Update(msg)
	case breakFocusDuration:
		e.duration, cmd = e.duration.Update(msg)
	}
	return e, cmd
}

// View renders the editor
func (e *BreakEditor) View() string {
	if e.mode == breakModeForm {
		return e.viewForm()
	}
	return e.viewList()
}

func (e *BreakEditor) viewList() string {
	var b strings.Builder

	if len(e.breaks) == 0 {
		b.WriteString(e.styles.MenuItemDisabled.Render("no pinned breaks"))
		b.WriteString("\n")
	}
	for i, br := range e.breaks {
		style := e.styles.MenuItem
		if i == e.cursor {
			style = e.styles.MenuItemActive
		}
		line := fmt.Sprintf("%-20s %s  %s", br.Label, br.StartTime, domain.FormatMinutes(br.Duration*60))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(e.styles.Footer.Render("a: add • d: delete • esc: close"))

	return b.String()
}

func (e *BreakEditor) viewForm() string {
	var b strings.Builder

	b.WriteString(e.fieldLabel("Label", breakFocusLabel))
	b.WriteString("     ")
	b.WriteString(e.label.View())
	b.WriteString("\n\n")

	b.WriteString(e.fieldLabel("Starts at", breakFocusStart))
	b.WriteString(" ")
	b.WriteString(e.start.View())
	b.WriteString("\n\n")

	b.WriteString(e.fieldLabel("Minutes", breakFocusDuration))
	b.WriteString("   ")
	b.WriteString(e.duration.View())
	b.WriteString("\n")

	if e.errText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Red).Render(e.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(e.styles.Footer.Render("Tab: next field • Enter: add • Esc: back"))

	return b.String()
}

// Title returns the editor title
func (e *BreakEditor) Title() string {
	if e.mode == breakModeForm {
		return "New Pinned Break"
	}
	return "Pinned Breaks"
}

// Size returns the editor dimensions
func (e *BreakEditor) Size() (width, height int) {
	if e.mode == breakModeForm {
		return 46, 13
	}
	rows := len(e.breaks)
	if rows == 0 {
		rows = 1
	}
	return 46, rows + 6
}

func (e *BreakEditor) fieldLabel(label string, focus int) string {
	if e.focus == focus {
		return e.styles.MenuItemActive.Render(label + ":")
	}
	return e.styles.MenuItem.Render(label + ":")
}

func (e *BreakEditor) openForm() {
	e.mode = breakModeForm
	e.focus = breakFocusLabel
	e.errText = ""
	e.label.SetValue("")
	e.start.SetValue("")
	e.duration.SetValue("")
	e.label.Focus()
	e.start.Blur()
	e.duration.Blur()
}

func (e *BreakEditor) moveFocus(delta int) {
	e.focus = (e.focus + delta + breakFocusCount) % breakFocusCount
	e.label.Blur()
	e.start.Blur()
	e.duration.Blur()
	switch e.focus {
	case breakFocusLabel:
		e.label.Focus()
	case breakFocusStart:
		e.start.Focus()
	case breakFocusDuration:
		e.duration.Focus()
	}
}

// submit validates the form and, on success, announces the break and
// returns to the list. Validation failures keep the form open with the
// reason shown inline.
func (e *BreakEditor) submit() tea.Cmd {
	minutes, err := strconv.Atoi(strings.TrimSpace(e.duration.Value()))
	if err != nil {
		e.errText = "minutes must be a number"
		return nil
	}

	br, err := domain.NewScheduleBreak(
		strings.TrimSpace(e.label.Value()),
		strings.TrimSpace(e.start.Value()),
		minutes,
	)
	if err != nil {
		e.errText = err.Error()
		return nil
	}

	e.breaks = append(e.breaks, br)
	e.mode = breakModeList
	e.cursor = len(e.breaks) - 1
	return func() tea.Msg { return BreakAddedMsg{Break: br} }
}
