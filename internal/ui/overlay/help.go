package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		scroll:     0,
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
			return h, nil

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
			return h, nil

		case "g":
			h.scroll = 0
			return h, nil

		case "G":
			h.scroll = h.maxScroll
			return h, nil
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	categories := h.getCategories()

	var content strings.Builder
	for i, cat := range categories {
		if i > 0 {
			content.WriteString("\n")
		}

		categoryStyle := lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)
		content.WriteString(categoryStyle.Render(cat.Name + ":"))
		content.WriteString("\n")

		for _, binding := range cat.Bindings {
			line := "  " + h.styles.MenuKey.Render(binding.Key) + "  " + h.styles.MenuItem.Render(binding.Description)
			content.WriteString(line)
			content.WriteString("\n")
		}
	}

	lines := strings.Split(content.String(), "\n")
	totalLines := len(lines)
	h.maxScroll = max(0, totalLines-h.viewHeight)

	start := h.scroll
	end := min(h.scroll+h.viewHeight, totalLines)

	visibleLines := lines[start:end]
	result := strings.Join(visibleLines, "\n")

	if h.maxScroll > 0 {
		scrollInfo := h.styles.Footer.Render(
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				"[",
				lipgloss.NewStyle().Foreground(styles.Yellow).Render("j/k"),
				" to scroll, ",
				lipgloss.NewStyle().Foreground(styles.Yellow).Render("g/G"),
				" to jump]",
			),
		)
		result += "\n\n" + scrollInfo
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	h.viewHeight = 20
	return 52, 24
}

// getCategories returns all keybinding categories
func (h *HelpOverlay) getCategories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Timer",
			Bindings: []KeyBinding{
				{Key: "Space", Description: "Start the focused square"},
				{Key: "Tab", Description: "Switch focused square"},
				{Key: "s", Description: "Switch work/break"},
				{Key: "r", Description: "Restart current interval"},
				{Key: "R", Description: "Restart with custom length"},
				{Key: "p", Description: "Pause everything"},
				{Key: "e", Description: "End session"},
				{Key: "+/-", Description: "Adjust pomodoro count"},
				{Key: "=", Description: "Set pomodoro count"},
			},
		},
		{
			Name: "Queue",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move selection"},
				{Key: "J/K", Description: "Reorder task"},
				{Key: "a", Description: "Add task"},
				{Key: "A", Description: "Add subtask"},
				{Key: "Enter", Description: "Edit selected"},
				{Key: "x", Description: "Check off selected"},
				{Key: "d", Description: "Delete selected"},
				{Key: "S", Description: "Split remaining estimate in two"},
			},
		},
		{
			Name: "Schedule",
			Bindings: []KeyBinding{
				{Key: "b", Description: "Add a pinned break"},
			},
		},
		{
			Name: "Session",
			Bindings: []KeyBinding{
				{Key: "o", Description: "Settings"},
				{Key: "g", Description: "Group session"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}

// min returns the minimum of two integers
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
