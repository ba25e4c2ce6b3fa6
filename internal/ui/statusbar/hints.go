package statusbar

import "github.com/riordanpawley/valerian/internal/types"

// GetHints returns the keybinding hints for the given timer state
func GetHints(state types.TimerDisplayState) string {
	switch state {
	case types.StateIdle:
		return "Space: start  Tab: square  a: add task  b: breaks  o: settings  ?: help  q: quit"
	case types.StateFocus, types.StateBreak:
		return "s: switch  p: pause  r: restart  x: check  e: end day  ?: help"
	case types.StateGrace:
		return "1-4: choose  j/k: move  Enter: confirm"
	case types.StatePaused:
		return "Space: resume  e: end day"
	case types.StateSummary:
		return "Enter: close"
	default:
		return ""
	}
}
