package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/valerian/internal/domain"
)

// GroupCreateMsg asks the app to create a new group session.
type GroupCreateMsg struct{}

// GroupJoinMsg asks the app to join the named session.
type GroupJoinMsg struct {
	ID string
}

// GroupLeaveMsg asks the app to leave the current session.
type GroupLeaveMsg struct{}

const (
	groupModeMenu = iota
	groupModeJoin
)

// GroupDialog manages group-session membership. Outside a session it
// offers create/join; inside one it shows the id and offers leave. The
// dialog only announces intent; the app talks to the network.
type GroupDialog struct {
	session domain.GroupSession
	mode    int
	cursor  int
	id      textinput.Model
	styles  *Styles
}

// NewGroupDialog creates the dialog over the current membership.
func NewGroupDialog(session domain.GroupSession) *GroupDialog {
	ti := textinput.New()
	ti.Placeholder = "session id..."
	ti.CharLimit = 40
	ti.Width = 30

	return &GroupDialog{
		session: session,
		id:      ti,
		styles:  New(),
	}
}

// Init initializes the dialog
func (d *GroupDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *GroupDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if d.mode == groupModeJoin {
		return d.updateJoin(msg)
	}
	return d.updateMenu(msg)
}

func (d *GroupDialog) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	items := d.items()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "g":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			d.cursor = (d.cursor + 1) % len(items)
			return d, nil

		case "k", "up":
			d.cursor = (d.cursor - 1 + len(items)) % len(items)
			return d, nil

		case "enter", " ":
			return d, d.pick(items[d.cursor])
		}
	}

	return d, nil
}

func (d *GroupDialog) updateJoin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			d.mode = groupModeMenu
			return d, nil

		case "enter":
			id := strings.TrimSpace(d.id.Value())
			if id == "" {
				return d, nil
			}
			return d, tea.Batch(
				func() tea.Msg { return GroupJoinMsg{ID: id} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	d.id, cmd = d.id.Update(msg)
	return d, cmd
}

// View renders the dialog
func (d *GroupDialog) View() string {
	var b strings.Builder

	if d.mode == groupModeJoin {
		b.WriteString(d.styles.MenuItem.Render("Session id:"))
		b.WriteString("  ")
		b.WriteString(d.id.View())
		b.WriteString("\n\n")
		b.WriteString(d.styles.Footer.Render("Enter: join • Esc: back"))
		return b.String()
	}

	if d.session.Active() {
		b.WriteString(d.styles.MenuItem.Render("In session "))
		b.WriteString(d.styles.MenuCount.Render(d.session.ID))
		b.WriteString(d.styles.MenuItem.Render(fmt.Sprintf(" as %s", d.session.Role)))
		b.WriteString("\n\n")
	}

	for i, item := range d.items() {
		style := d.styles.MenuItem
		if i == d.cursor {
			style = d.styles.MenuItemActive
		}
		b.WriteString(style.Render(item))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Footer.Render("j/k: move • Enter: choose • Esc: close"))

	return b.String()
}

// Title returns the dialog title
func (d *GroupDialog) Title() string {
	return "Group Session"
}

// Size returns the dialog dimensions
func (d *GroupDialog) Size() (width, height int) {
	if d.mode == groupModeJoin {
		return 48, 7
	}
	return 48, len(d.items()) + 8
}

func (d *GroupDialog) items() []string {
	if d.session.Active() {
		return []string{"Leave session"}
	}
	return []string{"Create a session", "Join by id"}
}

func (d *GroupDialog) pick(item string) tea.Cmd {
	switch item {
	case "Create a session":
		return tea.Batch(
			func() tea.Msg { return GroupCreateMsg{} },
			func() tea.Msg { return CloseOverlayMsg{} },
		)
	case "Join by id":
		d.mode = groupModeJoin
		d.id.SetValue("")
		d.id.Focus()
		return textinput.Blink
	case "Leave session":
		return tea.Batch(
			func() tea.Msg { return GroupLeaveMsg{} },
			func() tea.Msg { return CloseOverlayMsg{} },
		)
	}
	return nil
}
