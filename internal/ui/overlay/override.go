package overlay

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// OverrideKind selects what a numeric override dialog sets.
type OverrideKind int

const (
	// OverrideRemaining sets the active clock's remaining seconds.
	OverrideRemaining OverrideKind = iota
	// OverrideCount sets the pomodoro count.
	OverrideCount
)

// OverrideSubmittedMsg carries a confirmed override value. Remaining
// overrides are already converted to seconds.
type OverrideSubmittedMsg struct {
	Kind  OverrideKind
	Value int
}

// OverrideDialog is a single-field numeric input. Remaining time is
// entered as minutes or "MM:SS"; counts as a bare integer. Values clamp
// at zero so an override can never inject negative time.
type OverrideDialog struct {
	kind    OverrideKind
	input   textinput.Model
	errText string
	styles  *Styles
}

// NewOverrideDialog creates an override input for the given kind.
func NewOverrideDialog(kind OverrideKind) *OverrideDialog {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 6
	ti.Width = 10
	if kind == OverrideRemaining {
		ti.Placeholder = "25 or 12:30"
	} else {
		ti.Placeholder = "0"
	}

	return &OverrideDialog{
		kind:   kind,
		input:  ti,
		styles: New(),
	}
}

// Init initializes the dialog
func (d *OverrideDialog) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (d *OverrideDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			return d, d.submit()
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// View renders the dialog
func (d *OverrideDialog) View() string {
	var b strings.Builder

	prompt := "Remaining time:"
	if d.kind == OverrideCount {
		prompt = "Pomodoro count:"
	}
	b.WriteString(d.styles.MenuItem.Render(prompt))
	b.WriteString("  ")
	b.WriteString(d.input.View())
	b.WriteString("\n")

	if d.errText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Red).Render(d.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Footer.Render("Enter: apply • Esc: cancel"))

	return b.String()
}

// Title returns the dialog title
func (d *OverrideDialog) Title() string {
	if d.kind == OverrideCount {
		return "Set Pomodoro Count"
	}
	return "Set Remaining Time"
}

// Size returns the dialog dimensions
func (d *OverrideDialog) Size() (width, height int) {
	return 44, 8
}

func (d *OverrideDialog) submit() tea.Cmd {
	value, err := d.parse(strings.TrimSpace(d.input.Value()))
	if err != "" {
		d.errText = err
		return nil
	}

	kind := d.kind
	return tea.Batch(
		func() tea.Msg { return OverrideSubmittedMsg{Kind: kind, Value: value} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// parse interprets the raw input for the dialog's kind, reporting a
// display string on failure.
func (d *OverrideDialog) parse(raw string) (int, string) {
	if raw == "" {
		return 0, "enter a value"
	}

	if d.kind == OverrideCount {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, "count must be a number"
		}
		if n < 0 {
			n = 0
		}
		return n, ""
	}

	// Remaining time: "MM" minutes, or "MM:SS".
	if mm, ss, ok := strings.Cut(raw, ":"); ok {
		m, err1 := strconv.Atoi(mm)
		s, err2 := strconv.Atoi(ss)
		if err1 != nil || err2 != nil || s < 0 || s > 59 {
			return 0, "use minutes or MM:SS"
		}
		total := m*60 + s
		if total < 0 {
			total = 0
		}
		return total, ""
	}

	m, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "use minutes or MM:SS"
	}
	if m < 0 {
		m = 0
	}
	return m * 60, ""
}
