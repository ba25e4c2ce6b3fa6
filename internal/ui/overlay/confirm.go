package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmedMsg reports a confirmation dialog answered yes. Key names the
// action that was being confirmed; a declined dialog just closes.
type ConfirmedMsg struct {
	Key string
}

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	key      string
	title    string
	message  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// NewConfirmDialog creates a confirmation dialog for the named action.
func NewConfirmDialog(key, title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		key:     key,
		title:   title,
		message: message,
		styles:  New(),
		// Default to No
		selected: false,
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return c, c.confirm()

		case "n", "N", "esc":
			return c, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			if c.selected {
				return c, c.confirm()
			}
			return c, func() tea.Msg { return CloseOverlayMsg{} }

		case "left", "h":
			c.selected = false
			return c, nil

		case "right", "l", "tab":
			c.selected = true
			return c, nil
		}
	}

	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("h/l: switch • Enter: confirm • Esc: cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}

func (c *ConfirmDialog) confirm() tea.Cmd {
	key := c.key
	return tea.Batch(
		func() tea.Msg { return ConfirmedMsg{Key: key} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}
