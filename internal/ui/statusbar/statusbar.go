package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/valerian/internal/types"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	state  types.TimerDisplayState
	info   string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the given timer state. info is
// right-aligned free text (bank balance, group badge, mute marker).
func New(state types.TimerDisplayState, info string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		state:  state,
		info:   info,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + string(sb.state) + " ")

	hints := GetHints(sb.state)
	left := badge
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		left = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, sb.styles.StatusHint.Render(hints))
	}

	content := left
	if sb.info != "" {
		info := sb.styles.StatusInfo.Render(sb.info)
		gap := sb.width - lipgloss.Width(left) - lipgloss.Width(info) - 2
		if gap < 1 {
			gap = 1
		}
		content = left + strings.Repeat(" ", gap) + info
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
