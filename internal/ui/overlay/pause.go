package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PauseRequestedMsg carries the confirmed pause reason.
type PauseRequestedMsg struct {
	Reason string
}

// PauseDialog asks for an optional free-text reason before suspending
// both clocks.
type PauseDialog struct {
	reason textinput.Model
	styles *Styles
}

// NewPauseDialog creates the pause dialog.
func NewPauseDialog() *PauseDialog {
	ti := textinput.New()
	ti.Placeholder = "Reason (optional)..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	return &PauseDialog{
		reason: ti,
		styles: New(),
	}
}

// Init initializes the dialog
func (d *PauseDialog) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (d *PauseDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			reason := strings.TrimSpace(d.reason.Value())
			return d, tea.Batch(
				func() tea.Msg { return PauseRequestedMsg{Reason: reason} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	d.reason, cmd = d.reason.Update(msg)
	return d, cmd
}

// View renders the dialog
func (d *PauseDialog) View() string {
	var b strings.Builder

	b.WriteString(d.reason.View())
	b.WriteString("\n\n")
	b.WriteString(d.styles.Footer.Render("Enter: pause • Esc: cancel"))

	return b.String()
}

// Title returns the dialog title
func (d *PauseDialog) Title() string {
	return "Pause Everything"
}

// Size returns the dialog dimensions
func (d *PauseDialog) Size() (width, height int) {
	return 50, 7
}
